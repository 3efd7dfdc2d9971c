package qaparser

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
)

// iosStringsLine matches a single-line `"<key>" = "<value>";` entry from
// an iOS .strings file (spec §4.2). Other lines (comments, blanks) are
// skipped without error.
var iosStringsLine = regexp.MustCompile(`^"((?:[^"\\]|\\.)*)"\s*=\s*"((?:[^"\\]|\\.)*)"\s*;\s*$`)

// DecodeStrings implements the iOS .strings bundle decoder (spec §4.2).
func DecodeStrings(filename string, data []byte) (*model.TranslationFile, error) {
	file := model.NewTranslationFile(filename, model.FormatStrings, data)

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimRight(scanner.Text(), "\r"))
		m := iosStringsLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key := unquoteBackslash(`"` + m[1] + `"`)
		value := unquoteBackslash(`"` + m[2] + `"`)
		file.AddUnit(key, key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewParseError(filename, "failed reading .strings content", err)
	}

	return file, nil
}
