package utils

import "math"

// Round2 rounds a SAR amount to 2 decimals. Applied at each arithmetic step,
// not just at the end, to match currency-minor-unit semantics.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
