package qaparser

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
)

// inlineText flattens mixed-content XML (e.g. "Click <b>here</b>") down
// to its concatenated character data, the way spec §4.2 requires for
// XLIFF/SDLXLIFF source and target elements.
type inlineText string

func (t *inlineText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		switch v := tok.(type) {
		case xml.CharData:
			sb.Write(v)
		case xml.EndElement:
			if v.Name == start.Name {
				*t = inlineText(sb.String())
				return nil
			}
		}
	}
	*t = inlineText(sb.String())
	return nil
}

type xliffDocument struct {
	Files []xliffFile `xml:"file"`
}

type xliffFile struct {
	SourceLanguage string      `xml:"source-language,attr"`
	TargetLanguage string      `xml:"target-language,attr"`
	Body           xliffBody   `xml:"body"`
}

type xliffBody struct {
	TransUnits []xliffTransUnit `xml:"trans-unit"`
}

type xliffTransUnit struct {
	ID     string     `xml:"id,attr"`
	Source inlineText `xml:"source"`
	Target inlineText `xml:"target"`
	Note   string     `xml:"note"`
}

// DecodeXLIFF implements the XLIFF bundle decoder (spec §4.2).
func DecodeXLIFF(filename string, data []byte) (*model.TranslationFile, error) {
	return decodeXLIFFLike(filename, data, model.FormatXLIFF)
}

// DecodeSDLXLIFF implements the SDLXLIFF decoder. SDL's format is an
// XLIFF 1.2 superset with extra namespaced elements the trans-unit/
// source/target shape ignores, so it shares the XLIFF decoder (spec §4.2:
// "XLIFF / SDLXLIFF").
func DecodeSDLXLIFF(filename string, data []byte) (*model.TranslationFile, error) {
	return decodeXLIFFLike(filename, data, model.FormatSDLXLIFF)
}

func decodeXLIFFLike(filename string, data []byte, format model.Format) (*model.TranslationFile, error) {
	var doc xliffDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewParseError(filename, "malformed "+string(format), err)
	}

	file := model.NewTranslationFile(filename, format, data)
	if len(doc.Files) > 0 {
		if doc.Files[0].SourceLanguage != "" {
			file.SourceLanguage = doc.Files[0].SourceLanguage
		}
		file.TargetLanguage = doc.Files[0].TargetLanguage
	}

	for _, f := range doc.Files {
		for _, tu := range f.Body.TransUnits {
			u := file.AddUnit(tu.ID, string(tu.Source), string(tu.Target))
			u.Notes = tu.Note
		}
	}

	return file, nil
}
