package qaparser

import (
	"encoding/xml"
	"fmt"

	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
)

// androidString models a single <string name="…">text</string> element,
// flattening mixed content the same way inlineText does for XLIFF.
type androidString struct {
	Name string
	Text string
}

func (s *androidString) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "name" {
			s.Name = attr.Value
		}
	}
	var inline inlineText
	if err := inline.UnmarshalXML(d, start); err != nil {
		return err
	}
	s.Text = string(inline)
	return nil
}

type androidStringArray struct {
	Name  string       `xml:"name,attr"`
	Items []inlineText `xml:"item"`
}

type androidResources struct {
	Strings      []androidString      `xml:"string"`
	StringArrays []androidStringArray `xml:"string-array"`
}

// DecodeXML implements the generic (Android-style) XML bundle decoder
// (spec §4.2). Every <string name> is one unit; every <string-array>
// contributes one unit per <item>, 0-indexed as "name[i]".
func DecodeXML(filename string, data []byte) (*model.TranslationFile, error) {
	var res androidResources
	if err := xml.Unmarshal(data, &res); err != nil {
		return nil, errors.NewParseError(filename, "malformed XML", err)
	}

	file := model.NewTranslationFile(filename, model.FormatXML, data)

	for _, s := range res.Strings {
		file.AddUnit(s.Name, s.Text, "")
	}
	for _, arr := range res.StringArrays {
		for i, item := range arr.Items {
			file.AddUnit(fmt.Sprintf("%s[%d]", arr.Name, i), string(item), "")
		}
	}

	return file, nil
}
