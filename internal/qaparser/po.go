package qaparser

import (
	"bufio"
	"strings"

	"github.com/standardbeagle/tqa/internal/errors"
	"github.com/standardbeagle/tqa/internal/model"
)

type poLatch int

const (
	poFieldNone poLatch = iota
	poFieldCtxt
	poFieldID
	poFieldStr
)

type poPending struct {
	ctxt    strings.Builder
	id      strings.Builder
	str     strings.Builder
	notes   []string
	haveStr bool
	active  bool
}

// DecodePO implements the PO bundle decoder (spec §4.2).
func DecodePO(filename string, data []byte) (*model.TranslationFile, error) {
	return decodePOFamily(filename, data, model.FormatPO)
}

// DecodePOT implements the POT bundle decoder. POT is a PO template with
// the same grammar; it shares the PO state machine (spec §4.2).
func DecodePOT(filename string, data []byte) (*model.TranslationFile, error) {
	return decodePOFamily(filename, data, model.FormatPOT)
}

// decodePOFamily runs the three-latch state machine from spec §4.2: a
// unit is emitted when a new "#." comment, msgctxt or msgid begins while
// msgstr has already been seen, and once more at EOF, so a "#." comment
// attaches to the entry that follows it.
func decodePOFamily(filename string, data []byte, format model.Format) (*model.TranslationFile, error) {
	file := model.NewTranslationFile(filename, format, data)

	var pending poPending
	field := poFieldNone

	emit := func() {
		if !pending.active {
			return
		}
		ctxt, id, str := pending.ctxt.String(), pending.id.String(), pending.str.String()
		key := id
		if ctxt != "" {
			key = ctxt + "" + id
		}
		if key != "" { // skip the header entry (msgid "" with no context)
			u := file.AddUnit(key, id, str)
			if len(pending.notes) > 0 {
				u.Notes = strings.Join(pending.notes, " ")
			}
		}
		pending = poPending{}
	}

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		trimmed := strings.TrimSpace(strings.TrimRight(scanner.Text(), "\r"))

		switch {
		case strings.HasPrefix(trimmed, "#."):
			if pending.haveStr {
				emit()
			}
			pending.notes = append(pending.notes, strings.TrimSpace(strings.TrimPrefix(trimmed, "#.")))
			pending.active = true

		case strings.HasPrefix(trimmed, "msgctxt "):
			if pending.haveStr {
				emit()
			}
			pending.active = true
			pending.ctxt.WriteString(unquoteBackslash(strings.TrimPrefix(trimmed, "msgctxt ")))
			field = poFieldCtxt

		case strings.HasPrefix(trimmed, "msgid "):
			if pending.haveStr {
				emit()
			}
			pending.active = true
			pending.id.WriteString(unquoteBackslash(strings.TrimPrefix(trimmed, "msgid ")))
			field = poFieldID

		case strings.HasPrefix(trimmed, "msgstr "):
			pending.active = true
			pending.str.WriteString(unquoteBackslash(strings.TrimPrefix(trimmed, "msgstr ")))
			pending.haveStr = true
			field = poFieldStr

		case strings.HasPrefix(trimmed, "\""):
			cont := unquoteBackslash(trimmed)
			switch field {
			case poFieldCtxt:
				pending.ctxt.WriteString(cont)
			case poFieldID:
				pending.id.WriteString(cont)
			case poFieldStr:
				pending.str.WriteString(cont)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewParseError(filename, "failed reading PO content", err)
	}
	emit()

	return file, nil
}
