package shadow

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/mathscene"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitSquare is a square of side 1 centered at (0,0,z).
func unitSquare(z float64) []mathscene.Point3 {
	return []mathscene.Point3{
		mathscene.P3(-0.5, -0.5, z), mathscene.P3(0.5, -0.5, z),
		mathscene.P3(0.5, 0.5, z), mathscene.P3(-0.5, 0.5, z),
	}
}

// unitCube lists the faces of the cube [-0.5,0.5]³, each in boundary order.
func unitCube() [][]mathscene.Point3 {
	const h = 0.5
	return [][]mathscene.Point3{
		{mathscene.P3(-h, -h, -h), mathscene.P3(h, -h, -h), mathscene.P3(h, h, -h), mathscene.P3(-h, h, -h)},
		{mathscene.P3(-h, -h, h), mathscene.P3(h, -h, h), mathscene.P3(h, h, h), mathscene.P3(-h, h, h)},
		{mathscene.P3(-h, -h, -h), mathscene.P3(h, -h, -h), mathscene.P3(h, -h, h), mathscene.P3(-h, -h, h)},
		{mathscene.P3(-h, h, -h), mathscene.P3(h, h, -h), mathscene.P3(h, h, h), mathscene.P3(-h, h, h)},
		{mathscene.P3(-h, -h, -h), mathscene.P3(-h, h, -h), mathscene.P3(-h, h, h), mathscene.P3(-h, -h, h)},
		{mathscene.P3(h, -h, -h), mathscene.P3(h, h, -h), mathscene.P3(h, h, h), mathscene.P3(h, -h, h)},
	}
}

func TestOrthogonal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []mathscene.Point3{mathscene.P3(1, 2, 3), mathscene.P3(-4, 0.5, -2), mathscene.P3(7, 7, 0)}
	once := Orthogonal(pts)
	assert.Equal(t, []mathscene.Point3{mathscene.P3(1, 2, 0), mathscene.P3(-4, 0.5, 0), mathscene.P3(7, 7, 0)}, once)
	assert.Equal(t, once, Orthogonal(once), "idempotent")
	assert.Equal(t, mathscene.P3(1, 2, 3), pts[0], "input untouched")
	assert.Empty(t, Orthogonal(nil))
}

func TestPerspective(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, err := Perspective(mathscene.P3(0, 0, 2), mathscene.P3(1, 1, 1))
	require.NoError(t, err)
	assert.True(t, p.Equal(mathscene.P3(2, 2, 0)), "got %v", p)
	onPlane := mathscene.P3(3, -1, 0)
	p, err = Perspective(mathscene.P3(1, 1, 4), onPlane)
	require.NoError(t, err)
	assert.True(t, p.Equal(onPlane), "points on the plane are their own shadow, got %v", p)
}

func TestDegenerateRay(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Perspective(mathscene.P3(0, 0, 2), mathscene.P3(5, 5, 2))
	if !errors.Is(err, ErrDegenerateRay) {
		t.Errorf("expected ErrDegenerateRay, got %v", err)
	}
	pts := append(unitSquare(1), mathscene.P3(9, 9, 3))
	_, err = PerspectiveAll(mathscene.P3(0, 0, 3), pts)
	assert.ErrorIs(t, err, ErrDegenerateRay)
	_, err = PerspectiveArea(mathscene.P3(0, 0, 3), pts, 0)
	assert.ErrorIs(t, err, ErrDegenerateRay)
}

func TestPerspectiveConvergesToOrthogonal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	targets := []mathscene.Point3{
		mathscene.P3(1, 2, 3), mathscene.P3(-2, 0.5, 10), mathscene.P3(0, 0, 0), mathscene.P3(4, -4, -1),
	}
	ortho := Orthogonal(targets)
	for _, src := range []mathscene.Point3{mathscene.P3(0, 0, 1e6), mathscene.P3(5, -3, 1e6)} {
		shadow, err := PerspectiveAll(src, targets)
		require.NoError(t, err)
		for i := range targets {
			d := shadow[i].Sub(ortho[i]).Abs()
			assert.Less(t, d, 1e-3, "target %v, light %v", targets[i], src)
		}
	}
}

func TestArea(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 1.0, Area(unitSquare(3), 0), 1e-9)
	assert.Equal(t, 0.0, Area(unitSquare(3)[:2], 0), "too few points")
	hex := make([]mathscene.Point3, 6)
	for k := range hex {
		p := mathscene.Polar(1, 2*math.Pi*float64(k)/6)
		hex[k] = mathscene.P3(p.X(), p.Y(), 2)
	}
	assert.InDelta(t, 3*math.Sqrt(3)/2, Area(hex, 6), 1e-9)
}

func TestTiltedSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, theta := range []float64{0, 0.3, 1.0, math.Pi / 3, math.Pi / 2, 2.5} {
		R := mathscene.Rotation3(mathscene.P3(1, 0, 0), theta)
		square := R.ApplyAll(unitSquare(0))
		assert.InDelta(t, math.Abs(math.Cos(theta)), Area(square, 0), 1e-9, "tilt %g", theta)
	}
}

func TestPerspectiveArea(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// light at height h, square at height z: shadow scaled by h/(h−z)
	for _, z := range []float64{0, 0.5, 1, 1.5} {
		area, err := PerspectiveArea(mathscene.P3(0, 0, 2), unitSquare(z), 0)
		require.NoError(t, err)
		scale := 2 / (2 - z)
		assert.InDelta(t, scale*scale, area, 1e-9, "square at height %g", z)
	}
}

func TestUnionArea(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lower := []mathscene.Point3{
		mathscene.P3(0, 0, 0), mathscene.P3(2, 0, 0), mathscene.P3(2, 2, 0), mathscene.P3(0, 2, 0),
	}
	upper := []mathscene.Point3{
		mathscene.P3(1, 1, 5), mathscene.P3(3, 1, 5), mathscene.P3(3, 3, 5), mathscene.P3(1, 3, 5),
	}
	assert.InDelta(t, 7.0, UnionArea([][]mathscene.Point3{lower, upper}), 1e-9)
	assert.InDelta(t, 4.0, UnionArea([][]mathscene.Point3{lower}), 1e-9)
	assert.Equal(t, 0.0, UnionArea(nil))
}

func TestRotatedCubeShadow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		axis  mathscene.Point3
		theta float64
	}{
		{mathscene.P3(1, 1, 0), 0},
		{mathscene.P3(1, 1, 0), 0.3},
		{mathscene.P3(1, 1, 0), 0.6},
		{mathscene.P3(1, 1, 0), 1.0},
		{mathscene.P3(1, 0, 0), math.Pi / 4},
		{mathscene.P3(1, 2, 3), 0.9},
	}
	for _, c := range cases {
		R := mathscene.Rotation3(c.axis, c.theta)
		faces := unitCube()
		for i, f := range faces {
			faces[i] = R.ApplyAll(f)
		}
		// one face of each opposite pair is lit, shadows of lit faces do not overlap
		want := math.Abs(R.At(2, 0)) + math.Abs(R.At(2, 1)) + math.Abs(R.At(2, 2))
		got := UnionArea(faces)
		assert.InDelta(t, want, got, 1e-9, "axis %v, θ = %g", c.axis, c.theta)
	}
}
