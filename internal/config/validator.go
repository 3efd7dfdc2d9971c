package config

import (
	"fmt"

	"github.com/standardbeagle/tqa/internal/errors"
)

// Validator validates a QAConfig and applies defaults for unset fields
// (spec §4.6, §7).
type Validator struct{}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates cfg and fills in zero-valued fields
// from Default. MaxLengthRatio outside [MinMaxLengthRatio,
// MaxMaxLengthRatio] is a ConfigError, not a silent clamp (spec §7): the
// analyzer must never run with a threshold the user didn't ask for.
func (v *Validator) ValidateAndSetDefaults(cfg *QAConfig) error {
	if cfg.MaxLengthRatio == 0 {
		cfg.MaxLengthRatio = DefaultMaxLengthRatio
	}
	if cfg.MaxLengthRatio < MinMaxLengthRatio || cfg.MaxLengthRatio > MaxMaxLengthRatio {
		return errors.NewConfigError("maxLengthRatio", fmt.Sprintf("%v", cfg.MaxLengthRatio),
			fmt.Errorf("must be within [%.1f, %.1f]", MinMaxLengthRatio, MaxMaxLengthRatio))
	}

	if cfg.Rules == nil {
		cfg.Rules = Default().Rules
	} else {
		for name := range cfg.Rules {
			if !IsKnownRule(name) {
				return errors.NewConfigError("rules", name, fmt.Errorf("unknown rule"))
			}
		}
		for _, name := range RuleNames {
			if _, ok := cfg.Rules[name]; !ok {
				cfg.Rules[name] = !unimplementedRules[name]
			}
		}
	}

	return nil
}

// ValidateConfig is a convenience wrapper around NewValidator for callers
// that don't need to reuse the Validator value.
func ValidateConfig(cfg *QAConfig) error {
	return NewValidator().ValidateAndSetDefaults(cfg)
}
