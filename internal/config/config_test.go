package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEnablesImplementedRules(t *testing.T) {
	cfg := Default()

	for _, name := range RuleNames {
		want := !unimplementedRules[name]
		assert.Equal(t, want, cfg.Rules[name], "rule %s", name)
	}

	assert.Equal(t, DefaultMaxLengthRatio, cfg.MaxLengthRatio)
}

func TestRuleEnabledFallsBackWhenUnset(t *testing.T) {
	cfg := &QAConfig{Rules: map[string]bool{}}

	assert.True(t, cfg.RuleEnabled("missing_translation"))
	assert.False(t, cfg.RuleEnabled("inconsistent_case"))
}

func TestRuleEnabledHonorsExplicitOverride(t *testing.T) {
	cfg := &QAConfig{Rules: map[string]bool{"missing_translation": false}}

	assert.False(t, cfg.RuleEnabled("missing_translation"))
}

func TestIsKnownRule(t *testing.T) {
	assert.True(t, IsKnownRule("duplicate_translation"))
	assert.False(t, IsKnownRule("not_a_rule"))
}
