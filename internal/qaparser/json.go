package qaparser

import (
	"encoding/json"
	"sort"

	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
)

// jsonWrapperKeys are checked in this preference order; the first one
// present at the root is transparently unwrapped (spec §4.2 JSON).
var jsonWrapperKeys = []string{"translations", "messages", "strings"}

// DecodeJSON implements the JSON bundle decoder: one unit per string
// leaf in a depth-first walk, key = the dot-joined path from root.
// Arrays are ignored. Go's map decoding does not preserve source key
// order, so traversal at each level is alphabetical by key — this keeps
// the unit index deterministic across runs without reading raw tokens.
func DecodeJSON(filename string, data []byte) (*model.TranslationFile, error) {
	var root map[string]interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.NewParseError(filename, "invalid JSON", err)
	}

	file := model.NewTranslationFile(filename, model.FormatJSON, data)

	walkRoot := root
	for _, key := range jsonWrapperKeys {
		if nested, ok := root[key].(map[string]interface{}); ok {
			walkRoot = nested
			break
		}
	}

	walkJSONLeaves(file, walkRoot, "")
	return file, nil
}

func walkJSONLeaves(file *model.TranslationFile, node map[string]interface{}, prefix string) {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch v := node[k].(type) {
		case string:
			file.AddUnit(path, v, "")
		case map[string]interface{}:
			walkJSONLeaves(file, v, path)
		}
	}
}
