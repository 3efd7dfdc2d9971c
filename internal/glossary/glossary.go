// Package glossary implements the glossary loader (C3): two-column term
// extraction from tabular, TMX, or spreadsheet sources.
package glossary

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
	"github.com/standardbeagle/tqa/internal/qaparser"
)

// LoadCSV loads glossary terms from comma-delimited content (spec §4.3).
func LoadCSV(filename string, data []byte) ([]model.GlossaryTerm, error) {
	return loadTabular(filename, data, ',')
}

// LoadTSV loads glossary terms from tab-delimited content (spec §4.3).
func LoadTSV(filename string, data []byte) ([]model.GlossaryTerm, error) {
	return loadTabular(filename, data, '\t')
}

func loadTabular(filename string, data []byte, comma rune) ([]model.GlossaryTerm, error) {
	records, err := qaparser.ReadTabularRecords(data, comma)
	if err != nil {
		return nil, errors.NewParseError(filename, "malformed glossary", err)
	}
	return termsFromRows(records), nil
}

// termsFromRows applies spec §4.3's shared row rule: drop a header row
// containing "source" or "term" case-insensitively, then require two
// non-empty cells per row with an optional third as context.
func termsFromRows(records [][]string) []model.GlossaryTerm {
	start := 0
	if len(records) > 0 && qaparser.LooksLikeTabularHeader(records[0], "source", "term") {
		start = 1
	}

	terms := make([]model.GlossaryTerm, 0, len(records))
	for _, row := range records[start:] {
		if len(row) < 2 {
			continue
		}
		source := strings.TrimSpace(row[0])
		target := strings.TrimSpace(row[1])
		if source == "" || target == "" {
			continue
		}

		term := model.GlossaryTerm{Source: source, Target: target}
		if len(row) >= 3 {
			term.Context = strings.TrimSpace(row[2])
		}
		terms = append(terms, term)
	}
	return terms
}

// LoadTMX loads glossary terms from a translation-memory exchange
// document, reusing the bundle decoder's source/target assignment rule
// (spec §4.2, §4.3).
func LoadTMX(filename string, data []byte) ([]model.GlossaryTerm, error) {
	pairs, err := qaparser.ParseTMXPairs(data)
	if err != nil {
		return nil, errors.NewParseError(filename, "malformed glossary TMX", err)
	}

	terms := make([]model.GlossaryTerm, 0, len(pairs))
	for _, p := range pairs {
		source := strings.TrimSpace(p.Source)
		target := strings.TrimSpace(p.Target)
		if source == "" || target == "" {
			continue
		}
		terms = append(terms, model.GlossaryTerm{Source: source, Target: target})
	}
	return terms, nil
}

// LoadXLSX loads glossary terms from the first worksheet of a spreadsheet
// (spec §4.3).
func LoadXLSX(filename string, data []byte) ([]model.GlossaryTerm, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewParseError(filename, "malformed spreadsheet", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParseError(filename, "spreadsheet has no worksheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewParseError(filename, fmt.Sprintf("failed reading worksheet %q", sheets[0]), err)
	}

	return termsFromRows(rows), nil
}
