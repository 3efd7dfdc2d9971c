package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/standardbeagle/tqa/internal/model"
)

// InvalidHTMLTags is rule 12 (error): scans target for tag tokens,
// maintaining a stack. Self-closing and void elements are never pushed;
// a close whose name doesn't match the top of stack, or leftover opens
// at the end, each flag (spec §4.4).
func InvalidHTMLTags(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	tokens := htmlTagRe.FindAllString(u.Target, -1)
	var stack []string

	for _, tok := range tokens {
		inner := strings.TrimSuffix(strings.TrimPrefix(tok, "<"), ">")
		inner = strings.TrimSpace(inner)

		if strings.HasPrefix(inner, "/") {
			name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(inner, "/")))
			if len(stack) == 0 || stack[len(stack)-1] != name {
				return newIssue(u, model.IssueInvalidHTMLTags, model.SeverityError,
					fmt.Sprintf("unmatched closing tag </%s>", name), "")
			}
			stack = stack[:len(stack)-1]
			continue
		}

		selfClosing := strings.HasSuffix(inner, "/")
		name := tagName(strings.TrimSuffix(inner, "/"))

		if selfClosing || voidElements[name] {
			continue
		}
		stack = append(stack, name)
	}

	if len(stack) > 0 {
		return newIssue(u, model.IssueInvalidHTMLTags, model.SeverityError,
			fmt.Sprintf("unclosed tag <%s>", stack[len(stack)-1]), "")
	}
	return nil
}

func tagName(inner string) string {
	fields := strings.Fields(inner)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// InvalidXMLTags is rule 13 (warning): any tag name present in target but
// absent from source (case-sensitive set comparison) flags.
func InvalidXMLTags(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	srcNames := tagNameSet(u.Source)
	tgtNames := tagNameSet(u.Target)

	var extra []string
	for name := range tgtNames {
		if !srcNames[name] {
			extra = append(extra, name)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)
	return newIssue(u, model.IssueInvalidXMLTags, model.SeverityWarning,
		fmt.Sprintf("tags in target not present in source: %s", strings.Join(extra, ", ")), "")
}

func tagNameSet(s string) map[string]bool {
	names := make(map[string]bool)
	for _, m := range xmlTagNameRe.FindAllStringSubmatch(s, -1) {
		names[m[1]] = true
	}
	return names
}
