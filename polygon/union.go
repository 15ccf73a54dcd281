package polygon

import (
	"math"
	"slices"
	"sort"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/mathscene"
)

// Region is the union of a set of polygons. Its area is measured on the
// polygons themselves; its outline is a set of closed contours, where
// contours nested inside an odd number of other contours are holes.
type Region struct {
	sources  [][]mathscene.Pair // polygons taking part in the union
	contours []*Polygon         // outline, as computed by polyclip
}

// Union merges polygons into a single region. Open polygons and polygons
// enclosing less than Epsilon area (e.g. faces of a solid seen edge-on) are
// skipped.
//
// Contours are computed by polyclip on vertices snapped to Epsilon. Where
// polygons share edges they may be off; Area does not depend on them.
func Union(pgs ...*Polygon) Region {
	region := Region{sources: solid(pgs)}
	var result polyclip.Polygon
	for _, pts := range region.sources {
		clip := polyclip.Polygon{snapped(pts)}
		if len(result) == 0 {
			result = clip
			continue
		}
		result = result.Construct(polyclip.UNION, clip)
	}
	region.contours = make([]*Polygon, 0, len(result))
	for _, c := range result {
		region.contours = append(region.contours, fromContour(c))
	}
	L().Debugf("union of %d polygons has %d contours", len(region.sources), len(region.contours))
	if a, o := region.Area(), region.OutlineArea(); math.Abs(a-o) > 1e-6*math.Max(1, a) {
		L().Infof("union outline area %g deviates from area %g", o, a)
	}
	return region
}

// UnionArea is the area covered by at least one of the polygons. Open and
// degenerate polygons are skipped, as with Union.
func UnionArea(pgs ...*Polygon) float64 {
	return slabArea(solid(pgs))
}

// solid collects the knots of closed polygons with non-vanishing area.
func solid(pgs []*Polygon) [][]mathscene.Pair {
	var pts [][]mathscene.Pair
	for _, pg := range pgs {
		if pg == nil || !pg.cycle || pg.Area() < mathscene.Epsilon {
			continue
		}
		pts = append(pts, pg.Points())
	}
	return pts
}

// N is the number of outline contours, holes included.
func (r Region) N() int {
	return len(r.contours)
}

// Contour returns outline contour i.
func (r Region) Contour(i int) *Polygon {
	return r.contours[i]
}

// IsHole is a predicate: is contour i a hole of another contour?
func (r Region) IsHole(i int) bool {
	if r.contours[i].N() == 0 {
		return false
	}
	p := r.contours[i].Pt(0)
	depth := 0
	for j, c := range r.contours {
		if j != i && toContour(c.points).Contains(toPoint(p)) {
			depth++
		}
	}
	return depth%2 == 1
}

// Area of the region, i.e. the area covered by at least one polygon.
func (r Region) Area() float64 {
	return slabArea(r.sources)
}

// OutlineArea is the area enclosed by the outline: all outer contours minus
// all holes.
func (r Region) OutlineArea() float64 {
	var area float64
	for i, c := range r.contours {
		if r.IsHole(i) {
			area -= c.Area()
		} else {
			area += c.Area()
		}
	}
	return math.Max(area, 0)
}

// --- Slab decomposition ----------------------------------------------------

type edge struct {
	a, b mathscene.Pair
	pg   int // index of the polygon the edge belongs to
}

// slabArea cuts the plane into vertical slabs at every vertex and every edge
// crossing. Within a slab no edges cross, so the covered length of a
// vertical line is linear in x and its value at the slab's middle times the
// slab's width is exact.
func slabArea(pgs [][]mathscene.Pair) float64 {
	var edges []edge
	var xs []float64
	for i, pts := range pgs {
		n := len(pts)
		for k, a := range pts {
			b := pts[(k+1)%n]
			xs = append(xs, a.X())
			if a.X() != b.X() {
				edges = append(edges, edge{a: a, b: b, pg: i})
			}
		}
	}
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if x, ok := crossingX(edges[i], edges[j]); ok {
				xs = append(xs, x)
			}
		}
	}
	sort.Float64s(xs)
	xs = slices.Compact(xs)
	ys := make([][]float64, len(pgs))
	var spans []span
	var area float64
	for s := 1; s < len(xs); s++ {
		x0, x1 := xs[s-1], xs[s]
		xm := (x0 + x1) / 2
		for i := range ys {
			ys[i] = ys[i][:0]
		}
		for _, e := range edges {
			if (e.a.X() < xm) != (e.b.X() < xm) {
				t := (xm - e.a.X()) / (e.b.X() - e.a.X())
				ys[e.pg] = append(ys[e.pg], e.a.Y()+t*(e.b.Y()-e.a.Y()))
			}
		}
		spans = spans[:0]
		for _, y := range ys {
			sort.Float64s(y)
			for k := 0; k+1 < len(y); k += 2 { // even-odd
				spans = append(spans, span{y[k], y[k+1]})
			}
		}
		area += covered(spans) * (x1 - x0)
	}
	L().Debugf("slab area of %d polygons: %d slabs, area %g", len(pgs), len(xs)-1, area)
	return area
}

// crossingX returns the x-coordinate where two edges meet.
func crossingX(e, f edge) (float64, bool) {
	r, s := e.b-e.a, f.b-f.a
	denom := cross(r, s)
	if denom == 0 {
		return 0, false
	}
	qp := f.a - e.a
	t, u := cross(qp, s)/denom, cross(qp, r)/denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, false
	}
	return e.a.X() + t*r.X(), true
}

func cross(p, q mathscene.Pair) float64 {
	return p.X()*q.Y() - p.Y()*q.X()
}

type span struct {
	lo, hi float64
}

// covered is the total length of the union of spans. Reorders spans.
func covered(spans []span) float64 {
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	var length float64
	end := math.Inf(-1)
	for _, s := range spans {
		if s.hi <= end {
			continue
		}
		if s.lo > end {
			length += s.hi - s.lo
		} else {
			length += s.hi - end
		}
		end = s.hi
	}
	return length
}

// --- polyclip conversion ---------------------------------------------------

func toPoint(p mathscene.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func toContour(pts []mathscene.Pair) polyclip.Contour {
	c := make(polyclip.Contour, len(pts))
	for i, p := range pts {
		c[i] = toPoint(p)
	}
	return c
}

// snapped rounds vertices to Epsilon, so that vertices shared by
// neighbouring polygons become identical.
func snapped(pts []mathscene.Pair) polyclip.Contour {
	c := make(polyclip.Contour, len(pts))
	for i, p := range pts {
		c[i] = polyclip.Point{X: mathscene.Round(p.X()), Y: mathscene.Round(p.Y())}
	}
	return c
}

func fromContour(c polyclip.Contour) *Polygon {
	pg := NullPolygon()
	for _, p := range c {
		pg.Knot(mathscene.P(p.X, p.Y))
	}
	return pg.Cycle()
}
