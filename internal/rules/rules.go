package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/standardbeagle/tqa/internal/model"
)

// Rule pairs an issue-type tag with the predicate that produces it.
// Name matches config.RuleNames so the analyzer can look up the enabled
// flag.
type Rule struct {
	Name string
	Type model.IssueType
	Check func(u *model.TranslationUnit, ctx *Context) *model.QAIssue
}

// Canonical is the rule library in spec §4.4's evaluation order. Only
// the 21 implemented predicates appear here; inconsistent_case and
// potentially_incorrect_translation are declared in config.RuleNames but
// never emit an issue (spec §4.4).
var Canonical = []Rule{
	{"missing_translation", model.IssueMissingTranslation, MissingTranslation},
	{"empty_translation", model.IssueEmptyTranslation, EmptyTranslation},
	{"leading_trailing_spaces", model.IssueLeadingTrailingSpaces, LeadingTrailingSpaces},
	{"inconsistent_brackets", model.IssueInconsistentBrackets, InconsistentBrackets},
	{"inconsistent_placeholders", model.IssueInconsistentPlaceholders, InconsistentPlaceholders},
	{"inconsistent_punctuation", model.IssueInconsistentPunctuation, InconsistentPunctuation},
	{"inconsistent_numbers", model.IssueInconsistentNumbers, InconsistentNumbers},
	{"inconsistent_urls", model.IssueInconsistentURLs, InconsistentURLs},
	{"inconsistent_emails", model.IssueInconsistentEmails, InconsistentEmails},
	{"too_long_translation", model.IssueTooLongTranslation, TooLongTranslation},
	{"duplicate_translation", model.IssueDuplicateTranslation, DuplicateTranslation},
	{"invalid_html_tags", model.IssueInvalidHTMLTags, InvalidHTMLTags},
	{"invalid_xml_tags", model.IssueInvalidXMLTags, InvalidXMLTags},
	{"special_characters_mismatch", model.IssueSpecialCharactersMismatch, SpecialCharactersMismatch},
	{"formatting_issues", model.IssueFormattingIssues, FormattingIssues},
	{"untranslated_text", model.IssueUntranslatedText, UntranslatedText},
	{"target_same_as_source", model.IssueTargetSameAsSource, TargetSameAsSource},
	{"key_term_mismatch", model.IssueKeyTermMismatch, KeyTermMismatch},
	{"alphanumeric_mismatch", model.IssueAlphanumericMismatch, AlphanumericMismatch},
	{"inconsistent_source", model.IssueInconsistentSource, InconsistentSource},
	{"inconsistent_target", model.IssueInconsistentTarget, InconsistentTarget},
}

// MissingTranslation is rule 1 (error).
func MissingTranslation(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	if len(u.Target) == 0 {
		return newIssue(u, model.IssueMissingTranslation, model.SeverityError,
			"translation is missing", u.Source)
	}
	return nil
}

// EmptyTranslation is rule 2 (error).
func EmptyTranslation(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	if len(u.Target) > 0 && strings.TrimSpace(u.Target) == "" {
		return newIssue(u, model.IssueEmptyTranslation, model.SeverityError,
			"translation is whitespace only", "")
	}
	return nil
}

// LeadingTrailingSpaces is rule 3 (warning).
func LeadingTrailingSpaces(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	if u.Target == "" {
		return nil
	}
	srcLead, tgtLead := leadingWhitespace(u.Source), leadingWhitespace(u.Target)
	srcTrail, tgtTrail := trailingWhitespace(u.Source), trailingWhitespace(u.Target)

	if (srcLead != "") == (tgtLead != "") && (srcTrail != "") == (tgtTrail != "") {
		return nil
	}

	suggestion := srcLead + strings.TrimSpace(u.Target) + srcTrail
	return newIssue(u, model.IssueLeadingTrailingSpaces, model.SeverityWarning,
		"leading/trailing whitespace differs from source", suggestion)
}

// InconsistentPunctuation is rule 6 (warning).
func InconsistentPunctuation(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	if u.Source == "" {
		return nil
	}
	last := lastRune(u.Source)
	if !strings.ContainsRune(".!?:;,", last) {
		return nil
	}
	if u.Target != "" && lastRune(u.Target) == last {
		return nil
	}
	return newIssue(u, model.IssueInconsistentPunctuation, model.SeverityWarning,
		fmt.Sprintf("target is missing source's closing punctuation %q", string(last)),
		u.Target+string(last))
}

func lastRune(s string) rune {
	r := []rune(s)
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}

// InconsistentNumbers is rule 7 (warning).
func InconsistentNumbers(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	return countMismatchRule(u, digitRunRe, model.IssueInconsistentNumbers, "digit runs")
}

// InconsistentURLs is rule 8 (warning).
func InconsistentURLs(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	return countMismatchRule(u, urlRe, model.IssueInconsistentURLs, "URLs")
}

// InconsistentEmails is rule 9 (warning).
func InconsistentEmails(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	return countMismatchRule(u, emailRe, model.IssueInconsistentEmails, "email addresses")
}

func countMismatchRule(u *model.TranslationUnit, re *regexp.Regexp, issueType model.IssueType, label string) *model.QAIssue {
	srcCount := len(re.FindAllString(u.Source, -1))
	tgtCount := len(re.FindAllString(u.Target, -1))
	if srcCount == tgtCount {
		return nil
	}
	return newIssue(u, issueType, model.SeverityWarning,
		fmt.Sprintf("%s count mismatch: source has %d, target has %d", label, srcCount, tgtCount), "")
}

// TooLongTranslation is rule 10 (warning).
func TooLongTranslation(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	srcLen := visualWidth(u.Source)
	if srcLen == 0 {
		return nil
	}
	ratio := float64(visualWidth(u.Target)) / float64(srcLen)
	maxRatio := ctx.Config.MaxLengthRatio
	if ratio <= maxRatio {
		return nil
	}
	return newIssue(u, model.IssueTooLongTranslation, model.SeverityWarning,
		fmt.Sprintf("translation is %.0f%% of source length, exceeds %.0f%% threshold", ratio*100, maxRatio*100), "")
}

// SpecialCharactersMismatch is rule 14 (warning).
func SpecialCharactersMismatch(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	chars := []rune{'\n', '\t', '\\', '"', '\''}
	var mismatches []string
	for _, c := range chars {
		srcCount := strings.Count(u.Source, string(c))
		tgtCount := strings.Count(u.Target, string(c))
		if srcCount != tgtCount {
			mismatches = append(mismatches, fmt.Sprintf("%q: source=%d target=%d", c, srcCount, tgtCount))
		}
	}
	if len(mismatches) == 0 {
		return nil
	}
	return newIssue(u, model.IssueSpecialCharactersMismatch, model.SeverityWarning,
		"special character counts differ: "+strings.Join(mismatches, ", "), "")
}

// FormattingIssues is rule 15 (info).
func FormattingIssues(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	if multiSpaceRe.MatchString(u.Target) && !multiSpaceRe.MatchString(u.Source) {
		return newIssue(u, model.IssueFormattingIssues, model.SeverityInfo, "multiple consecutive spaces", "")
	}
	if strings.Contains(u.Target, "\r\n") && !strings.Contains(u.Source, "\r\n") {
		return newIssue(u, model.IssueFormattingIssues, model.SeverityInfo, "mixed line endings", "")
	}
	return nil
}

// TargetSameAsSource is rule 17 (info).
func TargetSameAsSource(u *model.TranslationUnit, ctx *Context) *model.QAIssue {
	src := []rune(u.Source)
	if len(src) < 2 {
		return nil
	}
	if !hasLetters(u.Source) {
		return nil
	}
	normSrc := foldCase(strings.TrimSpace(u.Source))
	normTgt := foldCase(strings.TrimSpace(u.Target))
	if normSrc != normTgt {
		return nil
	}
	return newIssue(u, model.IssueTargetSameAsSource, model.SeverityInfo,
		"translation is identical to source", "")
}
