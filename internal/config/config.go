// Package config implements the configuration model (C6): enabled-rule
// flags, the length ratio threshold, glossary terms, and the advisory
// tag-checking switches.
package config

import "github.com/standardbeagle/tqa/internal/model"

// RuleNames is the canonical order of C4's rule library: the 21
// implemented predicates (spec §4.4 items 1-21) followed by the two
// flags the engine declares but never emits an issue for.
var RuleNames = []string{
	"missing_translation",
	"empty_translation",
	"leading_trailing_spaces",
	"inconsistent_brackets",
	"inconsistent_placeholders",
	"inconsistent_punctuation",
	"inconsistent_numbers",
	"inconsistent_urls",
	"inconsistent_emails",
	"too_long_translation",
	"duplicate_translation",
	"invalid_html_tags",
	"invalid_xml_tags",
	"special_characters_mismatch",
	"formatting_issues",
	"untranslated_text",
	"target_same_as_source",
	"key_term_mismatch",
	"alphanumeric_mismatch",
	"inconsistent_source",
	"inconsistent_target",
	"inconsistent_case",
	"potentially_incorrect_translation",
}

// unimplementedRules default to disabled: the engine accepts these flags
// without ever emitting an issue for them (spec §4.4).
var unimplementedRules = map[string]bool{
	"inconsistent_case":                 true,
	"potentially_incorrect_translation": true,
}

const (
	// DefaultMaxLengthRatio is too_long_translation's default threshold
	// (spec §4.4, §4.6).
	DefaultMaxLengthRatio = 1.5
	// MinMaxLengthRatio and MaxMaxLengthRatio bound MaxLengthRatio
	// (spec §7): values outside this range are a ConfigError, not a
	// silent clamp.
	MinMaxLengthRatio = 1.0
	MaxMaxLengthRatio = 3.0
)

// QAConfig is the configuration model consumed by the analyzer driver
// (spec §4.6).
type QAConfig struct {
	Rules              map[string]bool
	MaxLengthRatio     float64
	IgnorePatterns     []string
	CustomPlaceholders []string
	CheckHTMLTags      bool
	CheckXMLTags       bool
	CheckPlaceholders  bool
	CaseSensitive      bool
	Glossary           []model.GlossaryTerm
	GlossaryPath       string
}

// Default returns a QAConfig with every field at spec §4.6's default.
func Default() *QAConfig {
	rules := make(map[string]bool, len(RuleNames))
	for _, name := range RuleNames {
		rules[name] = !unimplementedRules[name]
	}

	return &QAConfig{
		Rules:              rules,
		MaxLengthRatio:     DefaultMaxLengthRatio,
		IgnorePatterns:     []string{},
		CustomPlaceholders: []string{},
		CheckHTMLTags:      true,
		CheckXMLTags:       true,
		CheckPlaceholders:  true,
		CaseSensitive:      false,
	}
}

// RuleEnabled reports whether name is enabled: an explicit entry in
// cfg.Rules wins; otherwise an implemented rule is on and the two
// unimplemented rules are off (spec §4.5).
func (cfg *QAConfig) RuleEnabled(name string) bool {
	if cfg == nil || cfg.Rules == nil {
		return !unimplementedRules[name]
	}
	if enabled, ok := cfg.Rules[name]; ok {
		return enabled
	}
	return !unimplementedRules[name]
}

// IsKnownRule reports whether name is one of C4's declared rule tags.
func IsKnownRule(name string) bool {
	for _, n := range RuleNames {
		if n == name {
			return true
		}
	}
	return false
}
