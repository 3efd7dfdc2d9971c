// Package rules implements the QA rule library (C4): twenty-one
// independent pure predicates, each producing at most one issue per unit.
// The two further rule tags in config.RuleNames have no predicate.
package rules

import (
	"regexp"
	"strings"

	"github.com/standardbeagle/tqa/internal/config"
	"github.com/standardbeagle/tqa/internal/model"
)

// Context carries the full unit list and active configuration so
// relational rules and glossary enforcement can look beyond the single
// unit under test. Built once per Analyze call (spec §9: O(N) indexes
// rather than the naive O(N²) relational scan).
type Context struct {
	Config   *config.QAConfig
	Units    []model.TranslationUnit
	BySource map[string][]int
	ByTarget map[string][]int

	// glossaryPatterns caches each glossary word's compiled
	// word-boundary regex, built once so concurrent rule evaluation
	// across units (spec §5) never races on a shared mutable map.
	glossaryPatterns map[string]*regexp.Regexp
}

// NewContext builds the source/target indexes once for a unit slice.
func NewContext(units []model.TranslationUnit, cfg *config.QAConfig) *Context {
	ctx := &Context{
		Config:           cfg,
		Units:            units,
		BySource:         make(map[string][]int, len(units)),
		ByTarget:         make(map[string][]int, len(units)),
		glossaryPatterns: make(map[string]*regexp.Regexp),
	}
	for i, u := range units {
		ctx.BySource[u.Source] = append(ctx.BySource[u.Source], i)
		ctx.ByTarget[u.Target] = append(ctx.ByTarget[u.Target], i)
	}
	for _, term := range cfg.Glossary {
		ctx.compileWordPattern(term.Source)
		ctx.compileWordPattern(term.Target)
	}
	return ctx
}

func (ctx *Context) compileWordPattern(word string) {
	if word == "" {
		return
	}
	if _, ok := ctx.glossaryPatterns[word]; ok {
		return
	}
	ctx.glossaryPatterns[word] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

func (ctx *Context) wordBoundaryMatch(text, word string) bool {
	re, ok := ctx.glossaryPatterns[word]
	if !ok {
		return false
	}
	return re.MatchString(text)
}

func newIssue(u *model.TranslationUnit, issueType model.IssueType, severity model.Severity, message, suggestion string) *model.QAIssue {
	return &model.QAIssue{
		ID:         model.NewID(),
		UnitID:     u.ID,
		UnitIndex:  u.Index,
		UnitKey:    u.Key,
		Type:       issueType,
		Severity:   severity,
		Message:    message,
		Source:     u.Source,
		Target:     u.Target,
		Suggestion: suggestion,
	}
}

func leadingWhitespace(s string) string {
	i := 0
	for i < len(s) && isSpaceByte(s[i]) {
		i++
	}
	return s[:i]
}

func trailingWhitespace(s string) string {
	i := len(s)
	for i > 0 && isSpaceByte(s[i-1]) {
		i--
	}
	return s[i:]
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func hasLetters(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
		if r > 127 && strings.ToLower(string(r)) != strings.ToUpper(string(r)) {
			return true
		}
	}
	return false
}

func isPurelyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
