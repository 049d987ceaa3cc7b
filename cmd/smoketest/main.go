// Command smoketest feeds a fixed list of example sentences through the
// simplifier and prints the results to stdout. It exists for manual
// inspection; the sentences mirror the golden cases in data/golden.
package main

import (
	"fmt"

	"github.com/de-text-labs/de-num-nlp/simplify"
)

var examples = []string{
	"324.620,22 Euro wurden gespendet.",
	"1.897 Menschen nahmen teil.",
	"25 Prozent der Bevölkerung sind betroffen.",
	"90 Prozent stimmten zu.",
	"14 Prozent lehnten ab.",
	"Bei 38,7 Grad Celsius ist es sehr heiß.",
	"denn die Rente steigt um 4,57 Prozent.",
	"Im Jahr 2024 gab es 1.234 Ereignisse.",
	"Am 1. Januar 2024 waren es 5.678 Teilnehmer.",
	"Im Jahr 2025 gab es 2018 Ereignisse.",
}

func main() {
	for _, s := range examples {
		fmt.Println(simplify.Simplify(s))
	}
}
