package rules

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/tqa/internal/model"
)

var bracketPairs = []struct {
	open, close rune
}{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
	{'<', '>'},
}

// InconsistentBrackets is rule 4 (error): for each bracket family source
// and target must carry equal opening and equal closing counts.
func InconsistentBrackets(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	for _, pair := range bracketPairs {
		srcOpen, srcClose := countRune(u.Source, pair.open), countRune(u.Source, pair.close)
		tgtOpen, tgtClose := countRune(u.Target, pair.open), countRune(u.Target, pair.close)
		if srcOpen == tgtOpen && srcClose == tgtClose {
			continue
		}
		return newIssue(u, model.IssueInconsistentBrackets, model.SeverityError,
			fmt.Sprintf("bracket %q%q count mismatch: source has %d/%d, target has %d/%d",
				pair.open, pair.close, srcOpen, srcClose, tgtOpen, tgtClose), "")
	}
	return nil
}

func countRune(s string, r rune) int {
	return strings.Count(s, string(r))
}
