package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/standardbeagle/tqa/internal/model"
)

// AlphanumericMismatch is rule 19 (warning): the multisets of
// alphanumeric runs must be equal between source and target; the message
// lists what's missing from, and extra in, the target (spec §4.4).
func AlphanumericMismatch(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	srcRuns := runCounts(u.Source)
	tgtRuns := runCounts(u.Target)

	missing := diffCounts(srcRuns, tgtRuns)
	extra := diffCounts(tgtRuns, srcRuns)
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing in target: "+strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		parts = append(parts, "extra in target: "+strings.Join(extra, ", "))
	}
	return newIssue(u, model.IssueAlphanumericMismatch, model.SeverityWarning,
		strings.Join(parts, "; "), "")
}

func runCounts(s string) map[string]int {
	counts := make(map[string]int)
	for _, run := range alnumRunRe.FindAllString(s, -1) {
		counts[run]++
	}
	return counts
}

// diffCounts returns, sorted, every run whose count in a exceeds its
// count in b, annotated with the shortfall.
func diffCounts(a, b map[string]int) []string {
	var out []string
	for run, countA := range a {
		countB := b[run]
		if countA > countB {
			out = append(out, fmt.Sprintf("%s×%d", run, countA-countB))
		}
	}
	sort.Strings(out)
	return out
}
