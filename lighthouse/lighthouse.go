// Package lighthouse models points evenly spaced on a circle ("lighthouses")
// and the product of distances from a movable observer to all of them.
/*
Placing N lighthouses at the N-th roots of unity (scaled and shifted onto a
circle) gives the distance product a closed form: for an observer at angle
2π·f/N the product of normalized distances is |2·sin(π·f)|, which follows
from factoring x^N − 1 over the roots of unity. Two facts follow and are
exposed as functions, because the animations rely on them:

   HalfwayProduct:  observer halfway between lighthouse 0 and 1 → product 2
   ReplacedProduct: observer replaces lighthouse 0              → product N

Comparing the two observers lighthouse by lighthouse ("keeper" at lighthouse
0, "sailor" halfway to lighthouse 1) leads to the Wallis product for π/2 as
N grows, see KeeperSailorRatio and SailorRatios.

All functions are pure. Callers pass the circle, N, the observer fraction and
the set of ignored lighthouses explicitly on every call; nothing is cached.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package lighthouse

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/mathscene"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lighthouse'
func tracer() tracing.Trace {
	return tracing.Select("lighthouse")
}

// ErrInvalidConfig indicates a structurally invalid circle or lighthouse
// configuration, e.g. a non-positive radius or lighthouse count.
var ErrInvalidConfig = errors.New("invalid lighthouse configuration")

// Circle is the circle lighthouses are placed on. Radius must be positive.
type Circle struct {
	Center mathscene.Pair
	Radius float64
}

// UnitCircle is the circle of radius 1 around the origin.
var UnitCircle = Circle{Center: mathscene.Origin, Radius: 1}

// NewCircle creates a circle and validates it.
func NewCircle(center mathscene.Pair, radius float64) (Circle, error) {
	c := Circle{Center: center, Radius: radius}
	return c, c.Validate()
}

// Validate checks that the radius is a positive finite number and the
// center has finite coordinates.
func (c Circle) Validate() error {
	if err := checkRadius(c.Radius); err != nil {
		return err
	}
	if !mathscene.IsFinite(c.Center.X()) || !mathscene.IsFinite(c.Center.Y()) {
		return fmt.Errorf("%w: center %v is not finite", ErrInvalidConfig, c.Center)
	}
	return nil
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%v, r=%g)", c.Center, c.Radius)
}

func checkRadius(r float64) error {
	if !(r > 0) || math.IsInf(r, 0) {
		return fmt.Errorf("%w: radius must be positive, is %g", ErrInvalidConfig, r)
	}
	return nil
}

func checkCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: need at least 1 lighthouse, have %d", ErrInvalidConfig, n)
	}
	return nil
}

// at is the point at fraction f/n of the full turn. Lighthouse k and an
// observer at fraction k share this computation and thus coincide bit for bit.
func (c Circle) at(n int, f float64) mathscene.Pair {
	theta := 2 * math.Pi * f / float64(n)
	return c.Center + mathscene.Polar(c.Radius, theta)
}

// Lighthouses places n lighthouses on circle c, lighthouse k at angle 2πk/n
// counted from the positive x-axis. The result is ordered by increasing k and
// leaves out every index in ignored, so it holds n − ignored.Size() points.
//
// Returns ErrInvalidConfig for an invalid circle, n <= 0 or ignored indices
// outside of [0, n).
func Lighthouses(c Circle, n int, ignored IgnoreSet) ([]mathscene.Pair, error) {
	if err := c.Validate(); err != nil {
		tracer().Errorf("lighthouses: %v", err)
		return nil, err
	}
	if err := checkCount(n); err != nil {
		tracer().Errorf("lighthouses: %v", err)
		return nil, err
	}
	if lo, hi, ok := ignored.bounds(); ok && (lo < 0 || hi >= n) {
		err := fmt.Errorf("%w: ignored indices %v out of range [0,%d)", ErrInvalidConfig, ignored, n)
		tracer().Errorf("lighthouses: %v", err)
		return nil, err
	}
	points := make([]mathscene.Pair, 0, n-ignored.Size())
	for k := 0; k < n; k++ {
		if ignored.Contains(k) {
			continue
		}
		points = append(points, c.at(n, float64(k)))
	}
	tracer().Debugf("%d lighthouses on %s, %d ignored", len(points), c, ignored.Size())
	return points, nil
}

// Observer returns the point at fraction/n of the full turn around c, i.e.
// fraction = 0 is lighthouse 0 and fraction = 0.5 is halfway between
// lighthouse 0 and lighthouse 1. Any real fraction is accepted, including
// negative ones and ones beyond n.
func Observer(c Circle, n int, fraction float64) (mathscene.Pair, error) {
	if err := c.Validate(); err != nil {
		return mathscene.Origin, err
	}
	if err := checkCount(n); err != nil {
		return mathscene.Origin, err
	}
	return c.at(n, fraction), nil
}

// DistanceProduct is the product of |observer − L| / radius over all
// lighthouses L. The result is exactly 0 if the observer coincides with one
// of the lighthouses, and exactly 1 (the empty product) if lighthouses is
// empty.
//
// Returns ErrInvalidConfig if radius is not positive.
func DistanceProduct(observer mathscene.Pair, lighthouses []mathscene.Pair, radius float64) (float64, error) {
	if err := checkRadius(radius); err != nil {
		return 0, err
	}
	if len(lighthouses) == 0 {
		return 1, nil
	}
	// Keep mantissa and exponent apart: for large n the partial products
	// drift far outside the range of float64 before they settle again.
	mant, exp := 1.0, 0
	for _, l := range lighthouses {
		d := observer.Dist(l) / radius
		if d == 0 {
			return 0, nil
		}
		m, e := math.Frexp(mant * d)
		mant, exp = m, exp+e
	}
	return math.Ldexp(mant, exp), nil
}

// DistanceProduct places n lighthouses on c (leaving out ignored ones) and
// an observer at fraction, and returns the distance product between them.
func (c Circle) DistanceProduct(n int, fraction float64, ignored IgnoreSet) (float64, error) {
	lighthouses, err := Lighthouses(c, n, ignored)
	if err != nil {
		return 0, err
	}
	observer := c.at(n, fraction)
	dp, err := DistanceProduct(observer, lighthouses, c.Radius)
	tracer().Debugf("distance product n=%d f=%g: %g", n, fraction, dp)
	return dp, err
}

// ClosedForm is the distance product for any number of lighthouses, none
// ignored, and an observer at fraction, as given by |x^n − 1| for x on the
// unit circle: |2·sin(π·fraction)|. Neither n nor the circle matter.
func ClosedForm(fraction float64) float64 {
	return math.Abs(2 * math.Sin(math.Pi*fraction))
}
