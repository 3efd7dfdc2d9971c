package qaparser

import (
	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
)

// Decoder turns raw bundle bytes into a TranslationFile for one format.
type Decoder func(filename string, data []byte) (*model.TranslationFile, error)

var decoders = map[model.Format]Decoder{
	model.FormatJSON:       DecodeJSON,
	model.FormatXLIFF:      DecodeXLIFF,
	model.FormatSDLXLIFF:   DecodeSDLXLIFF,
	model.FormatXML:        DecodeXML,
	model.FormatPO:         DecodePO,
	model.FormatPOT:        DecodePOT,
	model.FormatStrings:    DecodeStrings,
	model.FormatYAML:       DecodeYAML,
	model.FormatProperties: DecodeProperties,
	model.FormatRESX:       DecodeRESX,
	model.FormatCSV:        DecodeCSV,
	model.FormatTSV:        DecodeTSV,
	model.FormatTMX:        DecodeTMX,
}

// Parse runs the format detector (C1) and the matching bundle decoder
// (C2), reading the entire byte content with no streaming (spec §5).
func Parse(filename string, data []byte) (*model.TranslationFile, error) {
	format, ok := DetectFormat(filename)
	if !ok {
		return nil, errors.NewParseError(filename, "unrecognized file extension", nil)
	}

	decode, ok := decoders[format]
	if !ok {
		return nil, errors.NewParseError(filename, "no decoder registered for format "+string(format), nil)
	}

	return decode(filename, data)
}
