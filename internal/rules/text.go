package rules

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// foldCaser performs full Unicode case folding (cases.Fold), so for
// example German ß and "ss" compare equal. The folding is not tailored
// to any language: Turkish dotted and dotless I use the default mapping.
var foldCaser = cases.Fold()

// foldCase normalizes s for case-insensitive comparison (rule 17).
func foldCase(s string) string {
	return foldCaser.String(s)
}

// visualWidth sums each rune's East Asian Width class: fullwidth and
// wide runes (most CJK text) count as two display columns, everything
// else as one. Rule 10's length ratio uses this instead of a plain rune
// count, so the ratio compares display widths: each wide character of a
// CJK target counts as two.
func visualWidth(s string) int {
	total := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			total += 2
		default:
			total++
		}
	}
	return total
}
