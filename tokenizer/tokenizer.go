// Package tokenizer finds numeral and percentage expressions in German
// text and returns them as tokens with byte offsets.
//
// Two token grammars are supported:
//
//   - Numeral: a digit run with optional interior dot groups and an
//     optional decimal comma ("324.620,22"), followed by a whitespace run
//     and an optional alphabetic unit or currency word. The whitespace and
//     the unit word belong to the token span; the bare numeral and the unit
//     are exposed separately via Number and Suffix.
//   - Percentage: a digit run with optional decimal comma, optional
//     whitespace, and the literal word "Prozent" ("4,57 Prozent").
//
// The package provides two API layers:
//
//   - Lazy: Numerals and Percentages return an iter.Seq[Token]. The
//     sequence is finite and restartable; ranging over it again rescans
//     the text from the start.
//   - Convenience: NumeralTokens and PercentageTokens return []Token.
//
// The invariant s[t.Start:t.End] == t.Text holds for every token, tokens
// never overlap, and they are produced in ascending offset order. The
// spans between tokens are untouched text; a caller interleaving gaps and
// token rewrites covers the input exactly once.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Interior dot groups are not required to have exactly three digits:
//     "3.14" is a single numeral (value 314 after separator stripping).
//   - Only ASCII digits are recognized.
//   - The literal "Prozent" is matched case-sensitively; "prozent" and
//     "PROZENT" are not percentage tokens.
package tokenizer

import (
	"fmt"
	"iter"
)

// TokenType classifies a token.
type TokenType int

const (
	Numeral TokenType = iota // Localized numeral with optional unit word
	Percent                  // Numeral followed by the word "Prozent"
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Numeral:
		return "Numeral"
	case Percent:
		return "Percent"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a matched numeric expression with its position and
// captured parts.
type Token struct {
	Text   string    // The full matched text, including whitespace and suffix
	Start  int       // Byte offset in the source string (inclusive)
	End    int       // Byte offset in the source string (exclusive)
	Type   TokenType // Classification of the token
	Number string    // The bare numeral part, e.g. "324.620,22"
	Suffix string    // Trailing unit/currency word for Numeral tokens, or ""
}

// String returns a debug representation, e.g. Numeral("1.234 Euro")[0:10].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Numerals returns a lazy sequence of numeral tokens in s, left to right.
func Numerals(s string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		scanNumerals(s, yield)
	}
}

// NumeralTokens returns all numeral tokens in s.
func NumeralTokens(s string) []Token {
	var tokens []Token
	scanNumerals(s, func(t Token) bool {
		tokens = append(tokens, t)
		return true
	})
	return tokens
}

// Percentages returns a lazy sequence of percentage tokens in s, left to
// right.
func Percentages(s string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		scanPercentages(s, yield)
	}
}

// PercentageTokens returns all percentage tokens in s.
func PercentageTokens(s string) []Token {
	var tokens []Token
	scanPercentages(s, func(t Token) bool {
		tokens = append(tokens, t)
		return true
	})
	return tokens
}
