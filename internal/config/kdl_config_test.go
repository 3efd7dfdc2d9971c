package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKDLRulesAndThreshold(t *testing.T) {
	content := `
rules {
    missing_translation false
    inconsistent_case true
}
max_length_ratio 2.0
check_html_tags false
glossary "glossary.csv"
`
	cfg, err := parseKDL(content)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.False(t, cfg.Rules["missing_translation"])
	assert.True(t, cfg.Rules["inconsistent_case"])
	assert.Equal(t, 2.0, cfg.MaxLengthRatio)
	assert.False(t, cfg.CheckHTMLTags)
	assert.Equal(t, "glossary.csv", cfg.GlossaryPath)
}

func TestParseKDLIgnorePatterns(t *testing.T) {
	content := `
ignore_patterns "TODO" "FIXME"
custom_placeholders "\\{\\{.*?\\}\\}"
`
	cfg, err := parseKDL(content)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Len(t, cfg.IgnorePatterns, 2)
	assert.Len(t, cfg.CustomPlaceholders, 1)
}

func TestLoadKDLMissingFileReturnsNil(t *testing.T) {
	cfg, err := LoadKDL(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}
