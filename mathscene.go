/*
Package mathscene implements the numeric core behind a set of explanatory
math animations: points in 2D and 3D, affine transformations and the
numeric predicates shared by the sub-packages.

The sub-packages do the actual work. Package lighthouse places points evenly
on a circle and computes distance products, package wallis generates the
Wallis product for π/2, and packages polygon and shadow project 3D outlines
onto a plane and measure the area of the result.

Nothing in here draws anything. A renderer calls into these packages once per
frame with the current parameters and positions whatever comes back.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package mathscene

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mathscene'
func tracer() tracing.Trace {
	return tracing.Select("mathscene")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Pair Data Type ========================================================

// Pair is a 2D point, stored as a complex number.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Polar constructs a pair at distance r from the origin, at angle theta
// (radians, counterclockwise from the positive x-axis).
func Polar(r, theta float64) Pair {
	return Pair(cmplx.Rect(r, theta))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Zap makes x-part and y-part 0 if they "mean" to be zero.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// Equal compares two pairs within Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Abs is the Euclidean length of p.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Dist is the Euclidean distance between p and p2.
func (p Pair) Dist(p2 Pair) float64 {
	return cmplx.Abs((p - p2).C())
}

// Dot is the scalar product of p and p2.
func (p Pair) Dot(p2 Pair) float64 {
	return p.X()*p2.X() + p.Y()*p2.Y()
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p)
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p)
}

// Rotatedaround returns a new pair rotated around v by theta (counterclockwise).
func (p Pair) Rotatedaround(v Pair, theta float64) Pair {
	return p.Shifted(-v).Rotated(theta).Shifted(v)
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

func newAT() AT {
	return make([]float64, 9)
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin, cos := math.Sincos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Scaling transform. Scale a point by a in both directions.
func Scaling(a float64) AT {
	m := Identity()
	m.set(0, 0, a)
	m.set(1, 1, a)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine 2 affine transformation to a new one: first m, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += n.get(row, k) * m.get(k, col)
			}
			o.set(row, col, s)
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x := m.get(0, 0)*p.X() + m.get(0, 1)*p.Y() + m.get(0, 2)
	y := m.get(1, 0)*p.X() + m.get(1, 1)*p.Y() + m.get(1, 2)
	return P(x, y)
}
