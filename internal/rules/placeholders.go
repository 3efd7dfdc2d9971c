package rules

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/tqa/internal/model"
)

// InconsistentPlaceholders is rule 5 (error): for each placeholder
// family, source and target must contain the same count. The first
// mismatching family flags, reporting both found sets (spec §4.4).
func InconsistentPlaceholders(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	for _, family := range placeholderFamilies {
		srcMatches := family.re.FindAllString(u.Source, -1)
		tgtMatches := family.re.FindAllString(u.Target, -1)
		if len(srcMatches) == len(tgtMatches) {
			continue
		}
		return newIssue(u, model.IssueInconsistentPlaceholders, model.SeverityError,
			fmt.Sprintf("%s placeholder mismatch: source has %s, target has %s",
				family.name, describeSet(srcMatches), describeSet(tgtMatches)), "")
	}
	return nil
}

func describeSet(matches []string) string {
	if len(matches) == 0 {
		return "none"
	}
	return fmt.Sprintf("%d (%s)", len(matches), strings.Join(matches, ", "))
}
