package mathscene

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// === Point3 Data Type ======================================================

// Point3 is a point (or vector) in 3D space. The plane z = 0 is the plane
// shadows fall onto.
type Point3 r3.Vec

// P3 is a quick notation for constructing a 3D point.
func P3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

// Vec returns p as a gonum vector.
func (p Point3) Vec() r3.Vec {
	return r3.Vec(p)
}

// Add returns p + q.
func (p Point3) Add(q Point3) Point3 {
	return Point3(r3.Add(p.Vec(), q.Vec()))
}

// Sub returns p − q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3(r3.Sub(p.Vec(), q.Vec()))
}

// Scaled returns p scaled by factor a.
func (p Point3) Scaled(a float64) Point3 {
	return Point3(r3.Scale(a, p.Vec()))
}

// Dot is the scalar product of p and q.
func (p Point3) Dot(q Point3) float64 {
	return r3.Dot(p.Vec(), q.Vec())
}

// Cross is the vector product p × q.
func (p Point3) Cross(q Point3) Point3 {
	return Point3(r3.Cross(p.Vec(), q.Vec()))
}

// Abs is the Euclidean length of p.
func (p Point3) Abs() float64 {
	return r3.Norm(p.Vec())
}

// Equal compares two points within Epsilon.
func (p Point3) Equal(q Point3) bool {
	return Is0(p.X-q.X) && Is0(p.Y-q.Y) && Is0(p.Z-q.Z)
}

// XY drops the z-coordinate.
func (p Point3) XY() Pair {
	return P(p.X, p.Y)
}

// === 3D Rotations ==========================================================

// M3 is a linear transform of 3D space.
type M3 struct {
	m *r3.Mat
}

// Identity3 is the transform leaving every point in place.
func Identity3() M3 {
	return M3{m: r3.NewMat([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})}
}

// Rotation3 rotates counter-clockwise by theta (radians) around axis, as seen
// looking down the axis towards the origin. A zero axis yields the identity.
func Rotation3(axis Point3, theta float64) M3 {
	if Is0(axis.Abs()) {
		tracer().Errorf("rotation around zero axis, using identity")
		return Identity3()
	}
	return M3{m: r3.NewRotation(theta, axis.Vec()).Mat()}
}

// At returns the matrix element at row i, column j.
func (m M3) At(i, j int) float64 {
	return m.m.At(i, j)
}

// Apply transforms p. The argument is unchanged.
func (m M3) Apply(p Point3) Point3 {
	return Point3(m.m.MulVec(p.Vec()))
}

// ApplyAll transforms every point of pts, preserving their order.
func (m M3) ApplyAll(pts []Point3) []Point3 {
	out := make([]Point3, len(pts))
	for i, p := range pts {
		out[i] = m.Apply(p)
	}
	return out
}
