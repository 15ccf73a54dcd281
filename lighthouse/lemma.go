package lighthouse

import (
	"fmt"

	"github.com/npillmayer/mathscene"
)

// HalfwayProduct is the distance product for an observer exactly halfway
// between lighthouse 0 and lighthouse 1, none ignored. It equals 2 for every
// n >= 1.
func HalfwayProduct(c Circle, n int) (float64, error) {
	return c.DistanceProduct(n, 0.5, IgnoreSet{})
}

// ReplacedProduct is the distance product for an observer sitting on
// lighthouse 0 while lighthouse 0 is ignored. It equals n for every n >= 1,
// not n − 1.
func ReplacedProduct(c Circle, n int) (float64, error) {
	return c.DistanceProduct(n, 0, Ignore(0))
}

// keeperAndSailor returns the keeper (on lighthouse 0), the sailor (halfway
// between lighthouse 0 and 1) and all lighthouses except lighthouse 0.
func keeperAndSailor(c Circle, n int) (keeper, sailor mathscene.Pair, lighthouses []mathscene.Pair, err error) {
	if lighthouses, err = Lighthouses(c, n, Ignore(0)); err != nil {
		return
	}
	keeper, sailor = c.at(n, 0), c.at(n, 0.5)
	return
}

// KeeperSailorRatio divides the keeper's distance product by the sailor's,
// both taken over all lighthouses except lighthouse 0. By the two lemmas this
// is n / (2 / |sailor − L₀|), which equals n·sin(π/2n) and approaches π/2 for
// growing n.
func KeeperSailorRatio(c Circle, n int) (float64, error) {
	keeper, sailor, lighthouses, err := keeperAndSailor(c, n)
	if err != nil {
		return 0, err
	}
	k, err := DistanceProduct(keeper, lighthouses, c.Radius)
	if err != nil {
		return 0, err
	}
	s, err := DistanceProduct(sailor, lighthouses, c.Radius)
	if err != nil {
		return 0, err
	}
	tracer().Debugf("keeper/sailor for n=%d: %g / %g", n, k, s)
	return k / s, nil
}

// SailorRatios returns up to m single-lighthouse ratios
// |keeper − L| / |sailor − L|, for lighthouses L taken alternately from
// both sides of lighthouse 0: L₁, L₍ₙ₋₁₎, L₂, L₍ₙ₋₂₎, …
// Every lighthouse except L₀ appears at most once. For large n the j-th
// ratio approaches the j-th factor of the Wallis product,
// 2/1, 2/3, 4/3, 4/5, …
func SailorRatios(c Circle, n, m int) ([]float64, error) {
	if m < 0 {
		return nil, fmt.Errorf("%w: negative number of ratios %d", ErrInvalidConfig, m)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkCount(n); err != nil {
		return nil, err
	}
	keeper, sailor := c.at(n, 0), c.at(n, 0.5)
	ratios := make([]float64, 0, min(m, n-1))
	ratio := func(k int) {
		if len(ratios) < m {
			l := c.at(n, float64(k))
			ratios = append(ratios, keeper.Dist(l)/sailor.Dist(l))
		}
	}
	for lo, hi := 1, n-1; lo <= hi && len(ratios) < m; lo, hi = lo+1, hi-1 {
		ratio(lo)
		if hi != lo {
			ratio(hi)
		}
	}
	return ratios, nil
}
