// Package tqa is the public surface (C7): Parse a bundle file, then
// Analyze it against a QAConfig.
package tqa

import (
	"github.com/standardbeagle/tqa/internal/analyzer"
	"github.com/standardbeagle/tqa/internal/config"
	"github.com/standardbeagle/tqa/internal/model"
	"github.com/standardbeagle/tqa/internal/qaparser"
)

// Parse decodes raw bundle bytes into a TranslationFile using the format
// detector and matching decoder (C1, C2).
func Parse(filename string, data []byte) (*model.TranslationFile, error) {
	return qaparser.Parse(filename, data)
}

// Analyze runs the rule library over file under cfg, producing a
// QAResult (C4, C5). A nil cfg runs with config.Default().
func Analyze(file *model.TranslationFile, cfg *config.QAConfig, opts ...analyzer.Option) (*model.QAResult, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	return analyzer.Analyze(file, cfg, opts...)
}
