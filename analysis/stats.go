// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

// percentage returns part/total*100, or 0 when total is 0
func percentage(part, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(part) / float64(total) * 100
}

// mean calculates the arithmetic mean
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// rowTotal sums every party column of a section row
func rowTotal(votes map[string]int64, parties []string) int64 {
	var total int64
	for _, code := range parties {
		total += votes[code]
	}
	return total
}
