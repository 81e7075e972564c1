package models

import (
	"strconv"
	"strings"
)

// ParsePrice converts raw user input into a unit price.
// Invalid or empty input degrades to 0; decimal precision is kept.
// The whole string must parse: a numeric prefix with trailing garbage,
// such as "12x", yields 0 rather than salvaging the 12.
// This function never fails: bad input is normalised, not reported.
func ParsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseQuantity converts raw user input into a quantity.
// Invalid or empty input degrades to 0; fractional input is truncated
// towards zero.
func ParseQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(v)
}
