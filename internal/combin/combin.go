// Package combin provides exact binomial coefficients and the binomial PMF
// for the small trial counts used by shield rolls.
package combin

import (
	"errors"
	"fmt"
	"math"
)

// MaxTrials is the largest n for which C(n, k) fits the int64 intermediate
// product (29*28*..*16 < MaxInt64 < 30*29*..*16).
const MaxTrials = 29

// ErrOutOfRange is returned by NChooseKChecked for n or k outside the table.
var ErrOutOfRange = errors.New("binomial coefficient out of range")

// table[n-1][k] holds C(n, k). Filled once at init and read-only afterwards.
var table [MaxTrials][MaxTrials + 1]int64

func init() {
	for n := 1; n <= MaxTrials; n++ {
		for k := 0; k <= n; k++ {
			table[n-1][k] = compute(n, k)
		}
	}
}

// compute does 2*s-1 multiplications and one division, s = min(k, n-k).
// The division is exact: any s consecutive integers are divisible by s!.
func compute(n, k int) int64 {
	small, big := k, n-k
	if small > big {
		small, big = big, small
	}

	numerator := int64(1)
	for f := big + 1; f <= n; f++ {
		numerator *= int64(f)
	}

	denominator := int64(1)
	for f := 2; f <= small; f++ {
		denominator *= int64(f)
	}

	return numerator / denominator
}

// NChooseK returns C(n, k). It panics unless 1 <= n <= MaxTrials and
// 0 <= k <= n.
func NChooseK(n, k int) int64 {
	v, err := NChooseKChecked(n, k)
	if err != nil {
		panic(err)
	}
	return v
}

// NChooseKChecked is NChooseK with an error instead of a panic.
func NChooseKChecked(n, k int) (int64, error) {
	if n < 1 || n > MaxTrials || k < 0 || k > n {
		return 0, fmt.Errorf("%w: n=%d k=%d", ErrOutOfRange, n, k)
	}
	return table[n-1][k], nil
}

// BinomialPMF returns the probability of exactly numSuccesses successes in
// numTrials independent trials with success probability p.
func BinomialPMF(numTrials, numSuccesses int, p float64) float64 {
	return float64(NChooseK(numTrials, numSuccesses)) *
		math.Pow(p, float64(numSuccesses)) *
		math.Pow(1-p, float64(numTrials-numSuccesses))
}
