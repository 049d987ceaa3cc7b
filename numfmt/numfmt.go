// Package numfmt parses, rounds, and formats numbers in the German locale.
//
// German prose writes numbers with a dot as thousands separator and a
// comma as decimal separator ("324.620,22"). The package converts between
// that notation and numeric values:
//
//   - Parse turns a German numeral string into a float64.
//   - RoundSignificant reduces a value to a coarse, readable magnitude.
//   - Format renders an integer back into German notation, with or
//     without thousands grouping.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Values at or above 10^18 are clamped before significance rounding;
//     counts in prose stay far below that.
//   - Parse accepts any dot placement ("3.14" parses as 314) because dots
//     are stripped as separators before conversion.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders grouped integers in the de locale, which separates
// thousands groups with a dot. message.Printer is safe for concurrent use.
var printer = message.NewPrinter(language.German)

// Rounding thresholds: small counts stay exact, mid counts collapse to a
// round hundred or thousand, large counts keep three significant digits.
const (
	exactBelow     = 100
	hundredsBelow  = 1000
	thousandsBelow = 100000

	significantDigits = 3

	// maxRoundable clamps inputs so the rounded value fits in an int64.
	maxRoundable = 1e18
)

// Parse converts a German numeral string to a float64.
// Dots are removed as thousands separators and the decimal comma becomes
// a dot, so "324.620,22" parses to 324620.22.
// Returns an error for input that is not a valid number after
// normalization.
func Parse(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("numfmt: empty input")
	}
	clean := strings.ReplaceAll(s, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("numfmt: cannot parse %q", s)
	}
	return f, nil
}

// RoundSignificant reduces a non-negative value to a coarser magnitude:
//
//	v < 100      nearest integer
//	v < 1000     nearest multiple of 100
//	v < 100000   nearest multiple of 1000
//	otherwise    three significant digits
//
// Halves round away from zero.
func RoundSignificant(f float64) int64 {
	if f < exactBelow {
		return int64(math.Round(f))
	}
	if f >= maxRoundable {
		f = maxRoundable
	}
	if f >= thousandsBelow {
		digits := len(strconv.FormatInt(int64(math.Round(f)), 10))
		magnitude := math.Pow(10, float64(digits-significantDigits))
		return int64(math.Round(f/magnitude)) * int64(magnitude)
	}
	if f >= hundredsBelow {
		return int64(math.Round(f/1000)) * 1000
	}
	return int64(math.Round(f/100)) * 100
}

// Format renders n in German notation. Grouped rendering separates
// thousands groups with a dot for values of 1000 and above; ungrouped
// rendering always emits plain digits. Years and other identifiers must
// be rendered ungrouped.
func Format(n int64, grouped bool) string {
	if !grouped || n < 1000 {
		return strconv.FormatInt(n, 10)
	}
	return printer.Sprintf("%d", n)
}
