package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// percentWord is the literal that closes a percentage token.
const percentWord = "Prozent"

// scanNumerals walks s left to right and yields a numeral token at every
// digit-run start. Scanning resumes after the end of each token, so tokens
// never overlap.
func scanNumerals(s string, yield func(Token) bool) {
	for i := 0; i < len(s); {
		if isDigitByte(s[i]) {
			tok := scanNumeral(s, i)
			if !yield(tok) {
				return
			}
			i = tok.End
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
}

// scanNumeral reads a numeral token starting at pos. The caller guarantees
// s[pos] is a digit.
//
// Grammar: digits, then any number of "."+digits groups, then an optional
// ","+digits decimal part, then a whitespace run, then an optional word of
// letters. The whitespace run belongs to the token even when no word
// follows it.
func scanNumeral(s string, pos int) Token {
	i := pos
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}

	// Interior dot groups: a dot counts only when digits follow.
	for i+1 < len(s) && s[i] == '.' && isDigitByte(s[i+1]) {
		i += 2
		for i < len(s) && isDigitByte(s[i]) {
			i++
		}
	}

	// Decimal comma: a comma counts only when digits follow.
	if i+1 < len(s) && s[i] == ',' && isDigitByte(s[i+1]) {
		i += 2
		for i < len(s) && isDigitByte(s[i]) {
			i++
		}
	}
	numEnd := i

	i = skipSpace(s, i)

	sufStart := i
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) {
			break
		}
		i += size
	}

	return Token{
		Text:   s[pos:i],
		Start:  pos,
		End:    i,
		Type:   Numeral,
		Number: s[pos:numEnd],
		Suffix: s[sufStart:i],
	}
}

// scanPercentages walks s left to right and yields percentage tokens.
// A failed attempt advances by a single byte, so a match may begin inside
// a longer digit run ("1.234 Prozent" matches "234 Prozent").
func scanPercentages(s string, yield func(Token) bool) {
	for i := 0; i < len(s); {
		if isDigitByte(s[i]) {
			if tok, ok := scanPercentage(s, i); ok {
				if !yield(tok) {
					return
				}
				i = tok.End
				continue
			}
			i++
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
}

// scanPercentage tries to read a percentage token at pos. The decimal-comma
// variant is attempted first; when the literal "Prozent" does not follow it,
// the comma part is dropped and the bare digit run is retried.
func scanPercentage(s string, pos int) (Token, bool) {
	i := pos
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}
	digitsEnd := i

	if i+1 < len(s) && s[i] == ',' && isDigitByte(s[i+1]) {
		i += 2
		for i < len(s) && isDigitByte(s[i]) {
			i++
		}
		if end, ok := percentAfter(s, i); ok {
			return Token{
				Text:   s[pos:end],
				Start:  pos,
				End:    end,
				Type:   Percent,
				Number: s[pos:i],
			}, true
		}
	}

	if end, ok := percentAfter(s, digitsEnd); ok {
		return Token{
			Text:   s[pos:end],
			Start:  pos,
			End:    end,
			Type:   Percent,
			Number: s[pos:digitsEnd],
		}, true
	}
	return Token{}, false
}

// percentAfter skips whitespace from i and checks for the literal "Prozent".
// Returns the byte offset just past the literal.
func percentAfter(s string, i int) (end int, ok bool) {
	i = skipSpace(s, i)
	if strings.HasPrefix(s[i:], percentWord) {
		return i + len(percentWord), true
	}
	return 0, false
}

// skipSpace returns the offset of the first non-whitespace rune at or
// after i.
func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
