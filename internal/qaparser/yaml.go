package qaparser

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
)

// yamlKeyLine is the restricted-YAML grammar from spec §4.2: two-space
// indentation per level, scalar string leaves only. Flow syntax, anchors,
// multi-line scalars and lists are explicitly unsupported (spec §9).
var yamlKeyLine = regexp.MustCompile(`^(\s*)(\w[\w-]*):\s*(.*)$`)

// DecodeYAML implements the restricted-YAML bundle decoder (spec §4.2).
func DecodeYAML(filename string, data []byte) (*model.TranslationFile, error) {
	file := model.NewTranslationFile(filename, model.FormatYAML, data)

	var stack []string
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := yamlKeyLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		depth := len(m[1]) / 2
		if depth > len(stack) {
			depth = len(stack)
		}
		stack = stack[:depth]

		key := m[2]
		value := strings.TrimSpace(m[3])
		if value == "" {
			stack = append(stack, key)
			continue
		}

		path := make([]string, 0, len(stack)+1)
		path = append(path, stack...)
		path = append(path, key)
		file.AddUnit(strings.Join(path, "."), value, "")
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewParseError(filename, "failed reading YAML content", err)
	}

	return file, nil
}
