package rules

import "github.com/standardbeagle/tqa/internal/model"

// DuplicateTranslation is rule 11 (info): another unit with identical
// non-empty source and identical target exists. Uses the Context's
// source index rather than an O(N²) scan (spec §9).
func DuplicateTranslation(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	if u.Source == "" {
		return nil
	}
	for _, idx := range ctx.BySource[u.Source] {
		other := &ctx.Units[idx]
		if other.ID == u.ID {
			continue
		}
		if other.Target == u.Target {
			return newIssue(u, model.IssueDuplicateTranslation, model.SeverityInfo,
				"same source and target also found in unit "+other.Key, "")
		}
	}
	return nil
}

// InconsistentSource is rule 20 (warning): another unit with the same
// target but a different source exists.
func InconsistentSource(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	for _, idx := range ctx.ByTarget[u.Target] {
		other := &ctx.Units[idx]
		if other.ID == u.ID {
			continue
		}
		if other.Source != u.Source {
			return newIssue(u, model.IssueInconsistentSource, model.SeverityWarning,
				"same target as unit "+other.Key+" but different source", "")
		}
	}
	return nil
}

// InconsistentTarget is rule 21 (warning): another unit with the same
// source but a different target exists.
func InconsistentTarget(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	for _, idx := range ctx.BySource[u.Source] {
		other := &ctx.Units[idx]
		if other.ID == u.ID {
			continue
		}
		if other.Target != u.Target {
			return newIssue(u, model.IssueInconsistentTarget, model.SeverityWarning,
				"same source as unit "+other.Key+" but different target", "")
		}
	}
	return nil
}
