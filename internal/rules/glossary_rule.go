package rules

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/tqa/internal/model"
)

// KeyTermMismatch is rule 18 (warning): for every glossary term whose
// source appears word-bounded (case-insensitive) in the unit's source,
// the term's target must appear word-bounded (case-insensitive) in the
// unit's target. Violations are collected and reported together
// (spec §4.4).
func KeyTermMismatch(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	var violations []string
	for _, term := range ctx.Config.Glossary {
		if term.Source == "" || term.Target == "" {
			continue
		}
		if !ctx.wordBoundaryMatch(u.Source, term.Source) {
			continue
		}
		if ctx.wordBoundaryMatch(u.Target, term.Target) {
			continue
		}
		violations = append(violations, fmt.Sprintf("%q should translate to %q", term.Source, term.Target))
	}
	if len(violations) == 0 {
		return nil
	}
	return newIssue(u, model.IssueKeyTermMismatch, model.SeverityWarning,
		"glossary terms not honored: "+strings.Join(violations, "; "), glossarySuggestion(ctx, u))
}

func glossarySuggestion(ctx *Context, u *model.TranslationUnit) string {
	for _, term := range ctx.Config.Glossary {
		if term.Source == "" || term.Target == "" {
			continue
		}
		if ctx.wordBoundaryMatch(u.Source, term.Source) && !ctx.wordBoundaryMatch(u.Target, term.Target) {
			return term.Target
		}
	}
	return ""
}
