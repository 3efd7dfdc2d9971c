package qaparser

import (
	"bufio"
	"strings"

	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
)

// DecodeProperties implements the Java .properties bundle decoder
// (spec §4.2): one unit per non-comment, non-blank line, split on the
// first '='. Lines without '=' are skipped.
func DecodeProperties(filename string, data []byte) (*model.TranslationFile, error) {
	file := model.NewTranslationFile(filename, model.FormatProperties, data)

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}

		idx := strings.Index(trimmed, "=")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(trimmed[:idx])
		value := unescapeProperties(strings.TrimSpace(trimmed[idx+1:]))
		file.AddUnit(key, value, "")
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewParseError(filename, "failed reading .properties content", err)
	}

	return file, nil
}

// unescapeProperties decodes \n, \t and \\ (spec §4.2).
func unescapeProperties(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte(s[i])
			}
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
