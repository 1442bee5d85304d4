package bmi

import (
	"math"
	"strconv"
	"strings"
)

// Compute returns weightKg / (heightCm/100)^2 rounded to two decimals.
// ok is false when either input is not a decimal number or the divisor is
// zero. Negative inputs are not rejected here; callers validate positivity.
func Compute(heightCm, weightKg string) (value float64, ok bool) {
	h, err := ParseDecimal(heightCm)
	if err != nil {
		return 0, false
	}
	w, err := ParseDecimal(weightKg)
	if err != nil {
		return 0, false
	}

	hm := h / 100
	div := hm * hm
	if div == 0 {
		return 0, false
	}

	v := w / div
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return Round2(v), true
}

// Round2 rounds v to two decimal places. Exact binary ties go to even.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// FormatValue renders a BMI with the same precision Compute rounds to.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ParseDecimal parses s as a finite decimal number, ignoring surrounding
// whitespace. "inf" and "NaN" spellings are accepted by strconv but are not
// measurements, so they fail with strconv.ErrSyntax.
func ParseDecimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
