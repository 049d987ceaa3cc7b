package simplify

import (
	"strings"
	"testing"
)

// FuzzSimplify verifies that Simplify never panics and that text without
// digits passes through byte for byte.
func FuzzSimplify(f *testing.F) {
	f.Add("")
	f.Add("324.620,22 Euro wurden gespendet.")
	f.Add("25 Prozent der Bevölkerung sind betroffen.")
	f.Add("Am 1. Januar 2024 waren es 5.678 Teilnehmer.")
	f.Add("Im Jahr 2025 gab es 2018 Ereignisse.")
	f.Add("1.234 Prozent")
	f.Add("42 €")
	f.Add("Prozent Prozent Prozent")
	f.Add("\xff\xfe0\xff")
	f.Add("999999999999999999999 Sterne")

	f.Fuzz(func(t *testing.T, s string) {
		got := Simplify(s)
		if !strings.ContainsAny(s, "0123456789") && got != s {
			t.Errorf("digit-free input changed:\n in: %q\nout: %q", s, got)
		}
		// A second run must not crash either.
		_ = Simplify(got)
	})
}
