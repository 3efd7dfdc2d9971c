// Package qaparser implements the format detector (C1) and the twelve
// bundle decoders (C2) that turn raw bytes into a model.TranslationFile.
package qaparser

import (
	"path/filepath"
	"strings"

	"github.com/standardbeagle/tqa/internal/model"
)

// extensionFormats maps a lowercased, dot-less extension to its format
// tag. Only the final extension is consulted (spec §4.1).
var extensionFormats = map[string]model.Format{
	"json":       model.FormatJSON,
	"xliff":      model.FormatXLIFF,
	"xlf":        model.FormatXLIFF,
	"sdlxliff":   model.FormatSDLXLIFF,
	"xml":        model.FormatXML,
	"po":         model.FormatPO,
	"pot":        model.FormatPOT,
	"strings":    model.FormatStrings,
	"yaml":       model.FormatYAML,
	"yml":        model.FormatYAML,
	"properties": model.FormatProperties,
	"resx":       model.FormatRESX,
	"csv":        model.FormatCSV,
	"tsv":        model.FormatTSV,
	"tmx":        model.FormatTMX,
}

// DetectFormat maps a filename to a bundle format. The second return
// value is false when the extension is unrecognized.
func DetectFormat(filename string) (model.Format, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	ext = strings.TrimPrefix(ext, ".")
	format, ok := extensionFormats[ext]
	return format, ok
}
