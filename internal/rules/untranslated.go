package rules

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/tqa/internal/model"
)

// UntranslatedText is rule 16 (warning): when a strict majority of
// source's longer words appear (case-insensitively) inside the target, the
// translation likely wasn't translated at all (spec §4.4). The ratio
// threshold is the sole determinant; jaroWinklerSimilarity/stem only
// decorate the message (spec §9's untranslated_text open question).
func UntranslatedText(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	src := u.Source
	if len([]rune(src)) < 5 || isPurelyDigits(src) {
		return nil
	}

	words := strings.Fields(src)
	var longWords []string
	for _, w := range words {
		if len([]rune(w)) > 3 {
			longWords = append(longWords, w)
		}
	}
	if len(longWords) == 0 {
		return nil
	}

	target := strings.ToLower(u.Target)
	var found int
	var matched []string
	for _, w := range longWords {
		if strings.Contains(target, strings.ToLower(w)) {
			found++
			matched = append(matched, w)
		}
	}

	ratio := float64(found) / float64(len(longWords))
	if ratio <= 0.5 {
		return nil
	}

	near := nearMatches(longWords, matched, u.Target)
	msg := fmt.Sprintf("target shares %d of %d source words verbatim (%.0f%%), translation may be untranslated",
		found, len(longWords), ratio*100)
	if near != "" {
		msg += "; " + near
	}
	return newIssue(u, model.IssueUntranslatedText, model.SeverityWarning, msg, "")
}

// nearMatches flags source words that fuzzy-match or share a stem with a
// target word but weren't counted as verbatim, as a hint the heuristic
// may be over- or under-firing on cognates (spec §9).
func nearMatches(longWords, matched []string, target string) string {
	matchedSet := make(map[string]bool, len(matched))
	for _, w := range matched {
		matchedSet[w] = true
	}

	targetWords := strings.Fields(target)
	var hints []string
	for _, w := range longWords {
		if matchedSet[w] {
			continue
		}
		wStem := stem(strings.ToLower(w))
		for _, tw := range targetWords {
			if stem(strings.ToLower(tw)) == wStem || jaroWinklerSimilarity(strings.ToLower(w), strings.ToLower(tw)) > 0.9 {
				hints = append(hints, fmt.Sprintf("%q~%q", w, tw))
				break
			}
		}
	}
	if len(hints) == 0 {
		return ""
	}
	return "possible cognates: " + strings.Join(hints, ", ")
}
