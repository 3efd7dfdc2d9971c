package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// yamlConfig mirrors QAConfig's field names for the .tqa.yaml fallback
// format (spec §4.6): used when no .tqa.kdl is present.
type yamlConfig struct {
	Rules              map[string]bool `yaml:"rules"`
	MaxLengthRatio     *float64        `yaml:"max_length_ratio"`
	IgnorePatterns     []string        `yaml:"ignore_patterns"`
	CustomPlaceholders []string        `yaml:"custom_placeholders"`
	CheckHTMLTags      *bool           `yaml:"check_html_tags"`
	CheckXMLTags       *bool           `yaml:"check_xml_tags"`
	CheckPlaceholders  *bool           `yaml:"check_placeholders"`
	CaseSensitive      *bool           `yaml:"case_sensitive"`
	Glossary           string          `yaml:"glossary"`
}

// LoadYAML loads a .tqa.yaml file from projectRoot, returning (nil, nil)
// when absent (spec §4.6).
func LoadYAML(projectRoot string) (*QAConfig, error) {
	yamlPath := filepath.Join(projectRoot, ".tqa.yaml")

	content, err := os.ReadFile(yamlPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read .tqa.yaml: %w", err)
	}

	var raw yamlConfig
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	cfg := Default()
	for name, enabled := range raw.Rules {
		cfg.Rules[name] = enabled
	}
	if raw.MaxLengthRatio != nil {
		cfg.MaxLengthRatio = *raw.MaxLengthRatio
	}
	if len(raw.IgnorePatterns) > 0 {
		cfg.IgnorePatterns = raw.IgnorePatterns
	}
	if len(raw.CustomPlaceholders) > 0 {
		cfg.CustomPlaceholders = raw.CustomPlaceholders
	}
	if raw.CheckHTMLTags != nil {
		cfg.CheckHTMLTags = *raw.CheckHTMLTags
	}
	if raw.CheckXMLTags != nil {
		cfg.CheckXMLTags = *raw.CheckXMLTags
	}
	if raw.CheckPlaceholders != nil {
		cfg.CheckPlaceholders = *raw.CheckPlaceholders
	}
	if raw.CaseSensitive != nil {
		cfg.CaseSensitive = *raw.CaseSensitive
	}
	cfg.GlossaryPath = raw.Glossary

	return cfg, nil
}

// Load tries .tqa.kdl first, then .tqa.yaml, then falls back to Default
// (spec §4.6).
func Load(projectRoot string) (*QAConfig, error) {
	if cfg, err := LoadKDL(projectRoot); err != nil {
		return nil, err
	} else if cfg != nil {
		return cfg, nil
	}

	if cfg, err := LoadYAML(projectRoot); err != nil {
		return nil, err
	} else if cfg != nil {
		return cfg, nil
	}

	return Default(), nil
}
