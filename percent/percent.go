// Package percent rewrites percentage expressions in German text into
// qualitative phrases.
//
// A handful of everyday fractions get fixed phrases ("25 Prozent" becomes
// "jeder Vierte", "50 Prozent" becomes "die Hälfte"); the remaining values
// collapse into coarse buckets or a rounded "etwa N Prozent".
//
// Rewrite must run before generic numeral scanning: a percentage's
// numeral would otherwise be read as a plain quantity with the trailing
// unit word "Prozent".
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Values from 76 to 89 share the ">50" bucket "mehr als die Hälfte";
//     there is no separate bucket between "drei von vier" and "fast alle".
//   - 15 maps to "wenige" while 16 already falls through to
//     "etwa 16 Prozent"; the boundary is inclusive on the low side only.
package percent

import (
	"math"
	"strconv"
	"strings"

	"github.com/de-text-labs/de-num-nlp/numfmt"
	"github.com/de-text-labs/de-num-nlp/tokenizer"
)

// Phrase maps a percentage value to its qualitative replacement.
func Phrase(v float64) string {
	switch {
	case v == 25:
		return "jeder Vierte"
	case v == 50:
		return "die Hälfte"
	case v == 75:
		return "drei von vier"
	case v >= 90:
		return "fast alle"
	case v > 50:
		return "mehr als die Hälfte"
	case v <= 15:
		return "wenige"
	default:
		return "etwa " + strconv.FormatInt(int64(math.Round(v)), 10) + " Prozent"
	}
}

// Rewrite replaces every percentage expression in s with its phrase,
// left to right, non-overlapping. Text outside the matched spans is
// copied verbatim. A numeral that cannot be parsed is left unchanged.
func Rewrite(s string) string {
	var b strings.Builder
	last := 0
	for tok := range tokenizer.Percentages(s) {
		b.WriteString(s[last:tok.Start])
		if v, err := numfmt.Parse(tok.Number); err == nil {
			b.WriteString(Phrase(v))
		} else {
			b.WriteString(tok.Text)
		}
		last = tok.End
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}
