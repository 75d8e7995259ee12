package statistics

import "math"

// round1 rounds to one decimal place with half-up tie-breaking. Every
// percentage and ratio in a snapshot goes through this helper so all
// figures break ties the same way regardless of sign.
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// percentOf returns part/total*100 rounded to one decimal, or 0 when the
// total is zero. Zero denominators are a guarded case, never a panic.
func percentOf(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) * 100 / float64(total))
}
