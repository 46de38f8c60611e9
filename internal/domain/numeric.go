package domain

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// NotCalculated is the sentinel shown in place of a derived value whose
// inputs could not be parsed.
const NotCalculated = "Not Calculated"

// numberPrefixRe matches the longest leading decimal literal a browser's
// parseFloat accepts, e.g. "12.5kg" -> "12.5", ".5" -> ".5", "1e3x" -> "1e3".
var numberPrefixRe = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseNumber reads a raw field value the way the host page's parseFloat does:
// leading whitespace is skipped and the longest numeric prefix is used.
// ok is false when no prefix parses, which callers treat as NaN.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimLeftFunc(raw, isJSSpace)
	m := numberPrefixRe.FindString(s)
	if m == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Overflowing literals ("1e400") become ±Inf, which is what the page shows.
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return math.NaN(), false
	}
	return v, true
}

// isJSSpace reports whether r is whitespace or a line terminator to
// parseFloat. It differs from unicode.IsSpace on U+FEFF and U+0085.
func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', ' ', '\u00a0', '\ufeff', '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// ParseNumberOrNaN is ParseNumber without the ok flag.
func ParseNumberOrNaN(raw string) float64 {
	v, _ := ParseNumber(raw)
	return v
}

// FormatFixed renders v with exactly digits fractional digits, matching
// Number.prototype.toFixed: ties round away from zero on the exact binary
// value, non-finite values are spelled out, and magnitudes >= 1e21 fall back
// to FormatNumber.
func FormatFixed(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= 1e21:
		return FormatNumber(v)
	}

	// Every float64 has a finite decimal expansion; 1100 digits covers the
	// smallest subnormal.
	exact := new(big.Float).SetFloat64(v).Text('f', 1100)
	d, err := decimal.NewFromString(exact)
	if err != nil {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}
	// toFixed rounds the magnitude and keeps the sign of any negative input,
	// so -0.001 becomes "-0.00" while -0 stays "0.00".
	out := d.Abs().StringFixed(int32(digits))
	if v < 0 {
		return "-" + out
	}
	return out
}

// FormatNumber renders v the way string interpolation of a number does in the
// host page: shortest round-trip digits, exponent form outside [1e-6, 1e21).
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + sign + exp
}
