// Package shadow projects 3D outlines onto the plane z = 0 and measures the
// area of the resulting shadow.
/*
Two kinds of light are supported. Orthogonal projection models light from
straight above (the sun, infinitely far away) and simply drops the
z-coordinate. Perspective projection models a point light: every point of
the object is moved along the ray from the light source through it until
the ray meets the plane. With the light source moving away, perspective
shadows converge to orthogonal ones.

Projection is applied point by point and keeps the order of the outline.
Areas are measured on a BoundarySample of the flattened shadow (see package
polygon), which is exact for convex outlines and an approximation for
outlines star-shaped around their centroid. Solids may be measured face by
face with UnionArea, which is exact for any arrangement of faces.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package shadow

import (
	"errors"
	"fmt"

	"github.com/npillmayer/mathscene"
	"github.com/npillmayer/mathscene/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// DefaultDirections is the number of directions outlines are sampled in
// when measuring areas.
const DefaultDirections = 100

// ErrDegenerateRay indicates a ray from the light source parallel to the
// projection plane, which never casts a shadow.
var ErrDegenerateRay = errors.New("ray parallel to projection plane")

// Orthogonal projects points straight down onto z = 0. Applying it twice
// equals applying it once.
func Orthogonal(points []mathscene.Point3) []mathscene.Point3 {
	out := make([]mathscene.Point3, len(points))
	for i, p := range points {
		out[i] = mathscene.Point3{X: p.X, Y: p.Y}
	}
	return out
}

// Perspective returns the point where the ray from source through target
// meets the plane z = 0. Returns ErrDegenerateRay if the ray runs parallel
// to the plane.
func Perspective(source, target mathscene.Point3) (mathscene.Point3, error) {
	v := target.Sub(source)
	if v.Z == 0 {
		return mathscene.Point3{}, fmt.Errorf("%w: from %v through %v", ErrDegenerateRay, source, target)
	}
	p := source.Sub(v.Scaled(source.Z / v.Z))
	p.Z = 0 // on the plane, up to rounding
	return p, nil
}

// PerspectiveAll projects every point of points from source, keeping their
// order. It stops at the first degenerate ray.
func PerspectiveAll(source mathscene.Point3, points []mathscene.Point3) ([]mathscene.Point3, error) {
	out := make([]mathscene.Point3, len(points))
	for i, p := range points {
		q, err := Perspective(source, p)
		if err != nil {
			tracer().Errorf("perspective shadow of point %d: %v", i, err)
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}

// Flatten drops the z-coordinate of every point.
func Flatten(points []mathscene.Point3) []mathscene.Pair {
	out := make([]mathscene.Pair, len(points))
	for i, p := range points {
		out[i] = p.XY()
	}
	return out
}

// Area is the area of the orthogonal shadow of an outline, sampled in the
// given number of directions. directions <= 0 selects DefaultDirections.
func Area(points []mathscene.Point3, directions int) float64 {
	return sampledArea(Flatten(Orthogonal(points)), directions)
}

// PerspectiveArea is the area of the shadow an outline casts in the light of
// a point source, sampled in the given number of directions.
// directions <= 0 selects DefaultDirections.
func PerspectiveArea(source mathscene.Point3, points []mathscene.Point3, directions int) (float64, error) {
	shadow, err := PerspectiveAll(source, points)
	if err != nil {
		return 0, err
	}
	return sampledArea(Flatten(shadow), directions), nil
}

func sampledArea(outline []mathscene.Pair, directions int) float64 {
	if directions <= 0 {
		directions = DefaultDirections
	}
	area := polygon.Area(polygon.BoundarySample(outline, directions))
	tracer().Debugf("shadow area of %d points: %g", len(outline), area)
	return area
}

// faceShadows flattens the orthogonal shadow of every face into a polygon.
func faceShadows(faces [][]mathscene.Point3) []*polygon.Polygon {
	pgs := make([]*polygon.Polygon, 0, len(faces))
	for _, f := range faces {
		pgs = append(pgs, polygon.FromPoints(Flatten(Orthogonal(f))))
	}
	return pgs
}

// UnionArea is the area of the orthogonal shadow of a solid given by its
// faces, each face an outline in boundary order. Overlapping face shadows
// count once; faces seen edge-on cast no shadow.
func UnionArea(faces [][]mathscene.Point3) float64 {
	area := polygon.UnionArea(faceShadows(faces)...)
	tracer().Debugf("shadow area of %d faces: %g", len(faces), area)
	return area
}

// Outline is the orthogonal shadow of a solid given by its faces, as a
// region with outline contours for drawing.
func Outline(faces [][]mathscene.Point3) polygon.Region {
	return polygon.Union(faceShadows(faces)...)
}
