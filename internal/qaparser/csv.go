package qaparser

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
)

// ReadTabularRecords parses RFC-4180 delimited content with the given
// field separator, shared by the CSV/TSV bundle decoders and the
// glossary loader (spec §4.2, §4.3).
func ReadTabularRecords(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// LooksLikeTabularHeader reports whether row is a header row: spec §4.2
// and §4.3 both detect one by a case-insensitive "key"/"source" (bundle)
// or "source"/"term" (glossary) cell in the first row.
func LooksLikeTabularHeader(row []string, markers ...string) bool {
	for _, cell := range row {
		lc := strings.ToLower(strings.TrimSpace(cell))
		for _, marker := range markers {
			if lc == marker {
				return true
			}
		}
	}
	return false
}

// DecodeCSV implements the CSV bundle decoder (spec §4.2).
func DecodeCSV(filename string, data []byte) (*model.TranslationFile, error) {
	return decodeTabular(filename, data, model.FormatCSV, ',')
}

// DecodeTSV implements the TSV bundle decoder (spec §4.2).
func DecodeTSV(filename string, data []byte) (*model.TranslationFile, error) {
	return decodeTabular(filename, data, model.FormatTSV, '\t')
}

func decodeTabular(filename string, data []byte, format model.Format, comma rune) (*model.TranslationFile, error) {
	records, err := ReadTabularRecords(data, comma)
	if err != nil {
		return nil, errors.NewParseError(filename, "malformed "+string(format), err)
	}

	file := model.NewTranslationFile(filename, format, data)

	start := 0
	if len(records) > 0 && LooksLikeTabularHeader(records[0], "key", "source") {
		start = 1
	}

	for _, row := range records[start:] {
		if len(row) < 2 {
			continue
		}
		target := ""
		if len(row) >= 3 {
			target = row[2]
		}
		file.AddUnit(row[0], row[1], target)
	}

	return file, nil
}
