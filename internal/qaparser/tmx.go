package qaparser

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
)

// defaultSourceLangPrefix is the TMX source-language heuristic from spec
// §4.2/§9 ("TMX language heuristic" open question): the first tuv, or any
// whose xml:lang begins with this prefix, is the source side. It is an
// unexported package-level var: code inside package qaparser can change
// the source language without changing DecodeTMX's signature; other
// packages cannot.
var defaultSourceLangPrefix = "en"

type tmxDocument struct {
	Body tmxBody `xml:"body"`
}

type tmxBody struct {
	TUs []tmxTU `xml:"tu"`
}

type tmxTU struct {
	ID   string  `xml:"id,attr"`
	TUVs []tmxTUV `xml:"tuv"`
}

type tmxTUV struct {
	Lang string     `xml:"lang,attr"`
	Seg  inlineText `xml:"seg"`
}

// TMXPair is one <tu>'s resolved source/target assignment, shared by the
// TMX bundle decoder and the glossary loader's TMX source (spec §4.3).
type TMXPair struct {
	ID     string
	Source string
	Target string
}

// ParseTMXPairs decodes a TMX document into its ordered list of
// source/target pairs, one per <tu>, per the assignment rule in spec §4.2.
func ParseTMXPairs(data []byte) ([]TMXPair, error) {
	var doc tmxDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	pairs := make([]TMXPair, 0, len(doc.Body.TUs))
	for i, tu := range doc.Body.TUs {
		id := tu.ID
		if id == "" {
			id = fmt.Sprintf("tu_%d", i+1)
		}
		source, target := tuSourceTarget(tu.TUVs)
		pairs = append(pairs, TMXPair{ID: id, Source: source, Target: target})
	}
	return pairs, nil
}

// tuSourceTarget assigns source/target within one <tu>'s tuvs: the first
// tuv, or any whose xml:lang starts with defaultSourceLangPrefix, is
// source; the first remaining tuv is target. A tu missing one side
// yields an empty string on that side.
func tuSourceTarget(tuvs []tmxTUV) (source, target string) {
	if len(tuvs) == 0 {
		return "", ""
	}

	sourceIdx := 0
	for i, tuv := range tuvs {
		if strings.HasPrefix(tuv.Lang, defaultSourceLangPrefix) {
			sourceIdx = i
			break
		}
	}

	source = string(tuvs[sourceIdx].Seg)
	for i, tuv := range tuvs {
		if i != sourceIdx {
			target = string(tuv.Seg)
			break
		}
	}
	return source, target
}

// DecodeTMX implements the TMX bundle decoder (spec §4.2).
func DecodeTMX(filename string, data []byte) (*model.TranslationFile, error) {
	pairs, err := ParseTMXPairs(data)
	if err != nil {
		return nil, errors.NewParseError(filename, "malformed TMX", err)
	}

	file := model.NewTranslationFile(filename, model.FormatTMX, data)
	for _, p := range pairs {
		file.AddUnit(p.ID, p.Source, p.Target)
	}
	return file, nil
}
