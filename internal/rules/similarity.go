package rules

import (
	"github.com/hbollon/go-edlib"
	"github.com/surgebase/porter2"
)

// jaroWinklerSimilarity scores two strings 0.0-1.0 via go-edlib. It is a
// supplementary signal surfaced only in an issue's message (spec §9's
// untranslated_text open question): it never flips the rule's pass/fail
// outcome, which stays the literal word-overlap ratio.
func jaroWinklerSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	score, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0.0
	}
	return float64(score)
}

// stem reduces a word to its Porter2 stem, used to recognize a source
// word's inflected forms inside the target for the same supplementary
// role as jaroWinklerSimilarity.
func stem(word string) string {
	if len(word) < 3 {
		return word
	}
	return porter2.Stem(word)
}
