package qaparser

import (
	"encoding/xml"

	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
)

type resxRoot struct {
	Data []resxData `xml:"data"`
}

type resxData struct {
	Name    string     `xml:"name,attr"`
	Value   inlineText `xml:"value"`
	Comment string     `xml:"comment"`
}

// DecodeRESX implements the .NET RESX bundle decoder (spec §4.2): one
// unit per <data name="K">, source from <value>, notes from <comment>.
func DecodeRESX(filename string, data []byte) (*model.TranslationFile, error) {
	var root resxRoot
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, errors.NewParseError(filename, "malformed RESX", err)
	}

	file := model.NewTranslationFile(filename, model.FormatRESX, data)
	for _, d := range root.Data {
		u := file.AddUnit(d.Name, string(d.Value), "")
		u.Notes = d.Comment
	}

	return file, nil
}
