// Package simplify rewrites numeric expressions in German text into
// simplified, reader-friendly forms.
//
// Three kinds of rewriting are applied:
//
//   - Percentages become qualitative phrases: "25 Prozent der Bevölkerung"
//     reads "jeder Vierte der Bevölkerung".
//   - Counts are rounded to a coarse magnitude and reformatted:
//     "324.620,22 Euro" reads "etwa 325.000 Euro".
//   - Years and calendar dates pass through verbatim: "Im Jahr 2024" and
//     "Am 1. Januar 2024" keep their numbers.
//
// The pass order is an invariant, not an accident: the percentage pass
// runs over the raw text first and generic numeral scanning runs over its
// output. In the other order, "25 Prozent" would be read as a plain
// quantity with the unit word "Prozent".
//
// Text outside rewritten spans is preserved byte for byte. The output is
// the input's untouched gaps and the per-token replacements concatenated
// in original order.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Simplification is not idempotent in general: a second run over
//     already simplified text never crashes and leaves digit-free phrases
//     ("jeder Vierte", "die Hälfte") alone, but output that still carries
//     a numeral is rewritten again. In particular, a percentage that maps
//     to "etwa N Prozent" is re-read by the quantity pass as a numeral
//     with the unit word "Prozent" and gains a second "etwa".
//   - Contextual explanations and figurative comparisons are extension
//     hooks (Options.Explain, Options.Compare) and are not built in.
package simplify

import (
	"math"
	"strings"

	"github.com/de-text-labs/de-num-nlp/dates"
	"github.com/de-text-labs/de-num-nlp/numfmt"
	"github.com/de-text-labs/de-num-nlp/percent"
	"github.com/de-text-labs/de-num-nlp/tokenizer"
)

// Options carries optional annotation hooks for SimplifyWith. The zero
// value disables all hooks.
type Options struct {
	// Explain, when non-nil, is called for every simplified quantity with
	// its parsed value and unit word. A non-empty result is appended in
	// parentheses after the rewritten quantity.
	Explain func(value float64, unit string) string

	// Compare, when non-nil, supplies a figurative comparison for a
	// simplified quantity. A non-empty result is appended in parentheses
	// after the rewritten quantity, after any explanation.
	Compare func(value float64, unit string) string
}

// Simplify rewrites numeric expressions in s and returns the result.
// It never fails: numerals that cannot be processed are left unchanged.
func Simplify(s string) string {
	return SimplifyWith(s, Options{})
}

// SimplifyWith is Simplify with annotation hooks enabled.
func SimplifyWith(s string, opts Options) string {
	if s == "" {
		return s
	}

	text := percent.Rewrite(s)

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	last := 0
	for tok := range tokenizer.Numerals(text) {
		b.WriteString(text[last:tok.Start])
		if dates.IsDateComponent(text, tok.Start) || dates.IsYear(text, tok.Start) {
			b.WriteString(tok.Text)
		} else {
			b.WriteString(rewriteQuantity(text, tok, opts))
		}
		last = tok.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// rewriteQuantity renders "etwa {value}" plus the captured unit word.
// Quantities whose value reads like a year are rendered without thousands
// grouping. On parse failure the token text passes through unchanged.
func rewriteQuantity(text string, tok tokenizer.Token, opts Options) string {
	v, err := numfmt.Parse(tok.Number)
	if err != nil {
		return tok.Text
	}

	rounded := numfmt.RoundSignificant(v)
	grouped := !dates.LooksLikeYear(text, tok.Start, int64(math.Round(v)))

	out := "etwa " + numfmt.Format(rounded, grouped)
	if tok.Suffix != "" {
		out += " " + tok.Suffix
	}
	if opts.Explain != nil {
		if note := opts.Explain(v, tok.Suffix); note != "" {
			out += " (" + note + ")"
		}
	}
	if opts.Compare != nil {
		if note := opts.Compare(v, tok.Suffix); note != "" {
			out += " (" + note + ")"
		}
	}
	return out
}
