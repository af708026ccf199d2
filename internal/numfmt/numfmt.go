// Package numfmt renders numbers the way the prediction output has always
// shown them: shortest round-trip digits and a fractional part on integral
// floats.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Decimal exponents outside [minFixedExp, maxFixedExp) switch to scientific
// notation.
const (
	minFixedExp = -4
	maxFixedExp = 16
)

// FormatFloat returns the shortest text that round-trips to v, e.g. "5.0",
// "11.3", "1e+16", "1.5e-05", "nan", "-inf".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	if exp := exponent(sci); exp < minFixedExp || exp >= maxFixedExp {
		return sci
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// FormatInt renders an integer input in plain decimal.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// exponent extracts the decimal exponent from strconv's 'e' output.
func exponent(sci string) int {
	i := strings.IndexByte(sci, 'e')
	if i < 0 {
		return 0
	}
	exp, err := strconv.Atoi(sci[i+1:])
	if err != nil {
		return 0
	}
	return exp
}
