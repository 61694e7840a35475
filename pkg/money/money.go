package money

import "math"

// ToMinor converts a decimal major-unit amount (e.g. 50.00) to integer
// minor units (5000). Rounds half away from zero so 0.1+0.2 artifacts in
// float64 inputs do not truncate a cent.
func ToMinor(major float64) int64 {
	return int64(math.Round(major * 100))
}

// FromMinor converts integer minor units back to decimal major units.
func FromMinor(minor int64) float64 {
	return float64(minor) / 100
}
