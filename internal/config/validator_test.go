package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndSetDefaultsAcceptsRange(t *testing.T) {
	cfg := &QAConfig{MaxLengthRatio: 2.5}
	require.NoError(t, ValidateConfig(cfg))
	assert.NotNil(t, cfg.Rules)
}

func TestValidateAndSetDefaultsZeroRatioGetsDefault(t *testing.T) {
	cfg := &QAConfig{}
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, DefaultMaxLengthRatio, cfg.MaxLengthRatio)
}

func TestValidateAndSetDefaultsRejectsOutOfRange(t *testing.T) {
	cfg := &QAConfig{MaxLengthRatio: 5.0}
	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateAndSetDefaultsRejectsUnknownRule(t *testing.T) {
	cfg := &QAConfig{MaxLengthRatio: 1.5, Rules: map[string]bool{"not_a_rule": true}}
	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateAndSetDefaultsFillsMissingRuleKeys(t *testing.T) {
	cfg := &QAConfig{MaxLengthRatio: 1.5, Rules: map[string]bool{"missing_translation": false}}
	require.NoError(t, ValidateConfig(cfg))
	assert.False(t, cfg.Rules["missing_translation"])
	assert.True(t, cfg.Rules["empty_translation"])
}
