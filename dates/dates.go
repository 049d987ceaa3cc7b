// Package dates decides whether a numeral in German text is a year or a
// calendar date component rather than a countable quantity.
//
// Three checks are provided, matching three distinct questions a number
// simplifier asks:
//
//   - IsYear: should the numeral be preserved verbatim because it names a
//     year ("Im Jahr 2024", "Januar 2024")?
//   - IsDateComponent: should it be preserved because it is part of a
//     calendar date ("1. Januar", "am 3. Mai 2024")?
//   - LooksLikeYear: does the value read like a year, so that a simplified
//     quantity must be rendered without thousands grouping ("2000", never
//     "2.000")? This check never causes verbatim preservation.
//
// The three checks overlap deliberately and apply in a fixed precedence;
// their edge-case behavior ("im Jahre 2019" is simplified, "Im Jahr 2019"
// is preserved) depends on that exact arrangement.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - IsYear tests month names by substring containment against the
//     preceding word, so compounds ("Januarausgabe 2024") also count as
//     year context.
//   - The trailing-space "Jahr "/"Jahre " suffix check in LooksLikeYear
//     can never match after whitespace trimming; it is retained verbatim
//     to pin the precedence of the year checks.
//   - Month names are matched case-sensitively.
package dates

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// months are the twelve German month names.
var months = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

const (
	// Year values in this range read as calendar years.
	minYear = 1900
	maxYear = 2100

	// lookaheadRunes bounds the window scanned for a following month name.
	lookaheadRunes = 50

	// dayDotWindow bounds the window checked for a "1."-style day pattern.
	dayDotWindow = 4
)

// IsYear reports whether the numeral starting at byte offset pos in s
// names a year. That is the case when the trimmed preceding text ends in
// the literal word "Jahr", or when the numeral is a four-digit number
// starting with "19" or "20" and a month name occurs in the word
// immediately before it.
func IsYear(s string, pos int) bool {
	before := strings.TrimSpace(s[:pos])
	if strings.HasSuffix(before, "Jahr") {
		return true
	}

	digits := leadingDigits(s[pos:])
	if len(digits) != 4 || !(strings.HasPrefix(digits, "19") || strings.HasPrefix(digits, "20")) {
		return false
	}
	words := strings.Fields(before)
	if len(words) == 0 {
		return false
	}
	last := words[len(words)-1]
	for _, m := range months {
		if strings.Contains(last, m) {
			return true
		}
	}
	return false
}

// IsDateComponent reports whether the numeral starting at byte offset pos
// in s is part of a calendar date. That is the case when the numeral sits
// after two whitespace characters and starts a "1."-style day-of-month
// pattern, or when the first or second whitespace-delimited word after it
// is exactly a month name.
func IsDateComponent(s string, pos int) bool {
	if pos > 0 && twoSpacesBefore(s, pos) && startsDayDot(s, pos) {
		return true
	}

	window := runePrefix(s[pos:], lookaheadRunes)
	words := strings.Fields(window)
	if len(words) == 0 {
		return false
	}
	// words[0] is the numeral itself plus any attached characters.
	if isMonth(words[0]) {
		return true
	}
	return len(words) > 1 && isMonth(words[1])
}

// LooksLikeYear reports whether the numeral value n at byte offset pos in
// s reads as a year. Quantities that look like years are rendered without
// thousands grouping.
func LooksLikeYear(s string, pos int, n int64) bool {
	before := strings.TrimSpace(s[:pos])
	if strings.HasSuffix(before, "Jahr ") || strings.HasSuffix(before, "Jahre ") {
		return false
	}
	return n >= minYear && n <= maxYear
}

// isMonth reports whether word is exactly a German month name.
func isMonth(word string) bool {
	for _, m := range months {
		if word == m {
			return true
		}
	}
	return false
}

// leadingDigits returns the run of ASCII digits at the start of s.
func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// twoSpacesBefore reports whether the two characters ending at pos are
// both whitespace.
func twoSpacesBefore(s string, pos int) bool {
	r1, size1 := utf8.DecodeLastRuneInString(s[:pos])
	if size1 == 0 || !unicode.IsSpace(r1) {
		return false
	}
	r2, size2 := utf8.DecodeLastRuneInString(s[:pos-size1])
	return size2 > 0 && unicode.IsSpace(r2)
}

// startsDayDot reports whether a digit run followed by a dot begins at pos
// within the next dayDotWindow bytes, as in "1." or "23.".
func startsDayDot(s string, pos int) bool {
	end := pos + dayDotWindow
	if end > len(s) {
		end = len(s)
	}
	i := pos
	for i < end && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > pos && i < end && s[i] == '.'
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
