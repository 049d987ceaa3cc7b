package tokenizer

import "testing"

// FuzzScan verifies that both scanners never panic and always uphold the
// offset invariant for arbitrary input.
func FuzzScan(f *testing.F) {
	f.Add("")
	f.Add("324.620,22 Euro wurden gespendet.")
	f.Add("25 Prozent der Bevölkerung sind betroffen.")
	f.Add("Am 1. Januar 2024 waren es 5.678 Teilnehmer.")
	f.Add("1.234 Prozent")
	f.Add("42 €")
	f.Add("3.14.15,9")
	f.Add("\xff\xfe0\xff")
	f.Add("0,")
	f.Add("ProzentProzent")

	f.Fuzz(func(t *testing.T, s string) {
		for _, tok := range NumeralTokens(s) {
			if tok.Start < 0 || tok.End > len(s) || tok.Start >= tok.End {
				t.Fatalf("bad numeral span %v for input %q", tok, s)
			}
			if s[tok.Start:tok.End] != tok.Text {
				t.Fatalf("numeral offset invariant broken: %v for input %q", tok, s)
			}
		}
		for _, tok := range PercentageTokens(s) {
			if tok.Start < 0 || tok.End > len(s) || tok.Start >= tok.End {
				t.Fatalf("bad percent span %v for input %q", tok, s)
			}
			if s[tok.Start:tok.End] != tok.Text {
				t.Fatalf("percent offset invariant broken: %v for input %q", tok, s)
			}
		}
	})
}
