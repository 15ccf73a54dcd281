// Package polygon deals with closed polygons in the plane: building them,
// measuring their area and approximating an outline by a fixed number of
// extreme points.
/*
Polygons are built the same way paths are in MetaPost, with a builder
chain (package qualifiers omitted):

   NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

Point sequences produced elsewhere (e.g. the shadow of a 3D outline) can be
measured directly with Area and BoundarySample without building a Polygon.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/mathscene"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'graphics'
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// Polygon is a sequence of knots. Once closed with Cycle, an edge connects
// the last knot to the first one.
type Polygon struct {
	points []mathscene.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by Knot.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates a closed polygon with the given knots.
func FromPoints(points []mathscene.Pair) *Polygon {
	pg := &Polygon{points: make([]mathscene.Pair, len(points)), cycle: true}
	copy(pg.points, points)
	return pg
}

// Knot appends a knot.
func (pg *Polygon) Knot(p mathscene.Pair) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes the polygon.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N is the number of knots.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns knot i. Indices wrap around, i.e. Pt(-1) is the last knot.
func (pg *Polygon) Pt(i int) mathscene.Pair {
	n := len(pg.points)
	if n == 0 {
		return mathscene.Origin
	}
	return pg.points[((i%n)+n)%n]
}

// Points returns a copy of the knots.
func (pg *Polygon) Points() []mathscene.Pair {
	pts := make([]mathscene.Pair, len(pg.points))
	copy(pts, pg.points)
	return pts
}

// Reversed returns a new polygon with the knots in reverse order.
func (pg *Polygon) Reversed() *Polygon {
	rev := &Polygon{points: make([]mathscene.Pair, len(pg.points)), cycle: pg.cycle}
	for i, p := range pg.points {
		rev.points[len(pg.points)-1-i] = p
	}
	return rev
}

// Transformed returns a new polygon with every knot transformed by T.
func (pg *Polygon) Transformed(T mathscene.AT) *Polygon {
	tr := &Polygon{points: make([]mathscene.Pair, len(pg.points)), cycle: pg.cycle}
	for i, p := range pg.points {
		tr.points[i] = T.Transform(p)
	}
	return tr
}

// Area of a closed polygon, see Area. Open polygons have no area.
func (pg *Polygon) Area() float64 {
	if !pg.cycle {
		return 0
	}
	return Area(pg.points)
}

// Box creates a rectangle from two opposite corners, counter-clockwise,
// starting at the lower left corner.
func Box(p, q mathscene.Pair) *Polygon {
	x0, x1 := math.Min(p.X(), q.X()), math.Max(p.X(), q.X())
	y0, y1 := math.Min(p.Y(), q.Y()), math.Max(p.Y(), q.Y())
	return NullPolygon().Knot(mathscene.P(x0, y0)).Knot(mathscene.P(x1, y0)).
		Knot(mathscene.P(x1, y1)).Knot(mathscene.P(x0, y1)).Cycle()
}

// Regular creates a regular n-gon with circumradius r around center, knot 0
// on the ray from center along the positive x-axis, counter-clockwise.
func Regular(center mathscene.Pair, r float64, n int) *Polygon {
	pg := NullPolygon()
	if n <= 0 {
		return pg.Cycle()
	}
	T := mathscene.Translation(center)
	for k := 0; k < n; k++ {
		pg.Knot(T.Transform(mathscene.Polar(r, 2*math.Pi*float64(k)/float64(n))))
	}
	return pg.Cycle()
}

// AsString returns a polygon as a (debugging) string, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.points {
		if i > 0 {
			b.WriteString(" -- ")
		}
		p = p.Zap()
		fmt.Fprintf(&b, "(%.4g,%.4g)", p.X(), p.Y())
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

// Area computes the area enclosed by a closed sequence of points with the
// shoelace formula. Points must trace the boundary without crossing edges,
// in either direction. Fewer than 3 points enclose no area.
func Area(points []mathscene.Pair) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, p := range points {
		d := points[(i+n-1)%n] - p
		sum += p.X()*d.Y() - p.Y()*d.X()
	}
	return 0.5 * math.Abs(sum)
}

// BoundarySample approximates an outline by n extreme points. For each of
// n directions at angles 2πi/n, it selects the point of points reaching
// farthest in that direction (maximum dot product); of equally far points the
// first one wins. The result is ordered by direction and may contain a point
// more than once.
//
// The sample only describes the outline faithfully if it is star-shaped
// around its centroid: concave parts are skipped over, so the area of the
// sample overestimates the area of such an outline. The error is not bounded.
//
// n <= 0 or an empty input yields no points.
func BoundarySample(points []mathscene.Pair, n int) []mathscene.Pair {
	if n <= 0 || len(points) == 0 {
		return nil
	}
	sample := make([]mathscene.Pair, n)
	for i := range sample {
		dir := mathscene.Polar(1, 2*math.Pi*float64(i)/float64(n))
		best, bestDot := points[0], points[0].Dot(dir)
		for _, p := range points[1:] {
			if d := p.Dot(dir); d > bestDot {
				best, bestDot = p, d
			}
		}
		sample[i] = best
	}
	L().Debugf("sampled %d points in %d directions", len(points), n)
	return sample
}
