// Package validate provides small reusable financial math helpers:
// year-over-year change, CAGR, and history consistency checks. They are
// shared by the checklist rules and the analysis engine.
package validate

import "math"

// CalculateYoY calculates year-over-year change between two values.
// Returns percentage change: (current - prior) / prior * 100.
func CalculateYoY(current, prior float64) float64 {
	if prior == 0 {
		if current == 0 {
			return 0
		}
		return math.Inf(1) // growth from a zero base
	}
	return (current - prior) / prior * 100
}

// CalculateCAGR calculates compound annual growth rate in percent.
// CAGR = ((end / start) ^ (1/years)) - 1.
func CalculateCAGR(startValue, endValue float64, years int) float64 {
	if startValue <= 0 || years <= 0 {
		return 0
	}
	return (math.Pow(endValue/startValue, 1.0/float64(years)) - 1) * 100
}

// AllPositive reports whether every value in the series is strictly
// positive. An empty series is not considered positive.
func AllPositive(values []float64) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if v <= 0 {
			return false
		}
	}
	return true
}

// GrowthFromHistory derives an annualized growth fraction from a series
// ordered oldest to newest. Returns nil when the series is too short or
// the CAGR is undefined (non-positive starting value).
func GrowthFromHistory(values []float64) *float64 {
	if len(values) < 2 {
		return nil
	}
	start, end := values[0], values[len(values)-1]
	if start <= 0 || end <= 0 {
		return nil
	}
	g := CalculateCAGR(start, end, len(values)-1) / 100
	return &g
}
