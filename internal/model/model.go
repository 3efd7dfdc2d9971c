// Package model holds the data types that flow between the bundle parsers,
// the rule library, and the analyzer driver.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Format is a recognized translation-bundle syntax tag, as chosen by
// the format detector from a filename's extension.
type Format string

const (
	FormatJSON       Format = "json"
	FormatXLIFF      Format = "xliff"
	FormatSDLXLIFF   Format = "sdlxliff"
	FormatXML        Format = "xml"
	FormatPO         Format = "po"
	FormatPOT        Format = "pot"
	FormatStrings    Format = "strings"
	FormatYAML       Format = "yaml"
	FormatProperties Format = "properties"
	FormatRESX       Format = "resx"
	FormatCSV        Format = "csv"
	FormatTSV        Format = "tsv"
	FormatTMX        Format = "tmx"
)

// Severity orders issues for filtering and display only; the analyzer
// never treats one severity differently from another when running rules.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IssueType is the closed enumeration of the 23 kinds of QA finding.
// These strings are part of the machine-readable export surface; renaming
// one is a breaking change.
type IssueType string

const (
	IssueMissingTranslation           IssueType = "missing_translation"
	IssueEmptyTranslation             IssueType = "empty_translation"
	IssueLeadingTrailingSpaces        IssueType = "leading_trailing_spaces"
	IssueInconsistentBrackets         IssueType = "inconsistent_brackets"
	IssueInconsistentPlaceholders     IssueType = "inconsistent_placeholders"
	IssueInconsistentPunctuation      IssueType = "inconsistent_punctuation"
	IssueInconsistentNumbers          IssueType = "inconsistent_numbers"
	IssueInconsistentURLs             IssueType = "inconsistent_urls"
	IssueInconsistentEmails           IssueType = "inconsistent_emails"
	IssueTooLongTranslation           IssueType = "too_long_translation"
	IssueDuplicateTranslation         IssueType = "duplicate_translation"
	IssueInvalidHTMLTags              IssueType = "invalid_html_tags"
	IssueInvalidXMLTags               IssueType = "invalid_xml_tags"
	IssueSpecialCharactersMismatch    IssueType = "special_characters_mismatch"
	IssueFormattingIssues             IssueType = "formatting_issues"
	IssueUntranslatedText             IssueType = "untranslated_text"
	IssueTargetSameAsSource           IssueType = "target_same_as_source"
	IssueKeyTermMismatch              IssueType = "key_term_mismatch"
	IssueAlphanumericMismatch         IssueType = "alphanumeric_mismatch"
	IssueInconsistentSource           IssueType = "inconsistent_source"
	IssueInconsistentTarget           IssueType = "inconsistent_target"
	IssueInconsistentCase             IssueType = "inconsistent_case"
	IssuePotentiallyIncorrectTrans    IssueType = "potentially_incorrect_translation"
)

// NewID returns an opaque identifier, unique within this process's
// lifetime. Callers must not parse or compare its structure.
func NewID() string {
	return uuid.NewString()
}

// TranslationUnit is a single translatable segment extracted by a bundle
// parser. Source and Target are never nil; an absent target is "".
type TranslationUnit struct {
	ID      string
	Key     string
	Source  string
	Target  string
	Context string
	Notes   string
	Line    int // 0 when the format carries no line information
	Index   int // 1-based, dense, monotonically increasing within a file
}

// TranslationFile is the ordered, finite decoder output for one document.
type TranslationFile struct {
	ID             string
	Filename       string
	Format         Format
	SourceLanguage string
	TargetLanguage string
	SizeBytes      int64
	UploadedAt     time.Time
	Units          []TranslationUnit
}

// NewTranslationFile builds an empty file shell with language defaults
// per spec: source defaults to "en", target defaults to "".
func NewTranslationFile(filename string, format Format, data []byte) *TranslationFile {
	return &TranslationFile{
		ID:             NewID(),
		Filename:       filename,
		Format:         format,
		SourceLanguage: "en",
		TargetLanguage: "",
		SizeBytes:      int64(len(data)),
		UploadedAt:     time.Now(),
	}
}

// AddUnit appends a unit, stamping a fresh ID and the next dense index.
func (f *TranslationFile) AddUnit(key, source, target string) *TranslationUnit {
	u := TranslationUnit{
		ID:     NewID(),
		Key:    key,
		Source: source,
		Target: target,
		Index:  len(f.Units) + 1,
	}
	f.Units = append(f.Units, u)
	return &f.Units[len(f.Units)-1]
}

// GlossaryTerm is a required (source, target) pair the key_term_mismatch
// rule enforces. Context is optional and informational only.
type GlossaryTerm struct {
	Source  string
	Target  string
	Context string
}

// QAIssue is a single finding produced by one rule on one unit.
type QAIssue struct {
	ID         string
	UnitID     string
	UnitIndex  int
	UnitKey    string
	Type       IssueType
	Severity   Severity
	Message    string
	Source     string
	Target     string
	Suggestion string
}

// QAStats is the aggregate closure over a QAResult's issues: Total
// equals len(Issues), Errors+Warnings+Info equals Total, and every
// ByType count sums back to Total.
type QAStats struct {
	Total    int
	Errors   int
	Warnings int
	Info     int
	ByType   map[IssueType]int
}

// QAResult is the pure output of analyzing one TranslationFile against
// one QAConfig.
type QAResult struct {
	FileID     string
	Filename   string
	TotalUnits int
	Issues     []QAIssue
	Stats      QAStats
}
