// Package wallis generates the factors of the Wallis product
//
//	π/2 = (2/1)·(2/3)·(4/3)·(4/5)·(6/5)·(6/7)⋯
//
// and its partial products. Factor n is the limit of the n-th ratio of
// package lighthouse's SailorRatios for a growing number of lighthouses.
//
// Partial products of even length increase towards π/2, those of odd length
// decrease towards it, so the sequence of partial products oscillates around
// the limit with shrinking amplitude.
/*
# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package wallis

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wallis'
func tracer() tracing.Trace {
	return tracing.Select("wallis")
}

// Limit is the value of the infinite Wallis product.
const Limit = math.Pi / 2

// Term returns numerator and denominator of factor n, n >= 0:
// (n+2, n+1) for even n and (n+1, n+2) for odd n.
// Negative n yields the neutral factor 1/1.
func Term(n int) (num, den int) {
	if n < 0 {
		tracer().Errorf("Wallis term for negative index %d", n)
		return 1, 1
	}
	if n%2 == 0 {
		return n + 2, n + 1
	}
	return n + 1, n + 2
}

// Factor returns term n as a float.
func Factor(n int) float64 {
	num, den := Term(n)
	return float64(num) / float64(den)
}

// CumProd returns the cumulative products of the first m factors:
// element i is the product of factors 0..i.
func CumProd(m int) []float64 {
	if m <= 0 {
		return nil
	}
	cp := make([]float64, m)
	prod := 1.0
	for i := range cp {
		prod *= Factor(i)
		cp[i] = prod
	}
	return cp
}

// Product is the product of the first m factors, 1 for m <= 0.
func Product(m int) float64 {
	prod := 1.0
	for i := 0; i < m; i++ {
		prod *= Factor(i)
	}
	return prod
}

// Error is the distance of Product(m) from π/2.
func Error(m int) float64 {
	return math.Abs(Product(m) - Limit)
}

// TermsFor returns the smallest even number of factors whose product is
// within eps of π/2, giving up after limit factors. The second return value
// reports whether eps has been reached.
func TermsFor(eps float64, limit int) (int, bool) {
	prod := 1.0
	for m := 0; ; m += 2 {
		if math.Abs(prod-Limit) < eps {
			return m, true
		}
		if m+2 > limit {
			break
		}
		prod *= Factor(m) * Factor(m+1)
	}
	tracer().Infof("Wallis product not within %g after %d factors", eps, limit)
	return limit, false
}
