package rules

import "regexp"

// Shared regex contracts (spec §4.4, §9): all are expressible without
// backreferences or lookaround so they port to ECMAScript/RE2-family
// engines as the spec requires.
var (
	digitRunRe   = regexp.MustCompile(`\d+`)
	urlRe        = regexp.MustCompile(`https?://\S+`)
	emailRe      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	xmlTagNameRe = regexp.MustCompile(`<\/?([a-zA-Z][a-zA-Z0-9]*)`)
	alnumRunRe   = regexp.MustCompile(`[A-Za-z0-9]+`)
)

var placeholderFamilies = []struct {
	name string
	re   *regexp.Regexp
}{
	{"printf", regexp.MustCompile(`%(\d+\$)?[sdif]`)},
	{"double-brace", regexp.MustCompile(`\{\{[a-zA-Z_][a-zA-Z0-9_]*\}\}`)},
	{"shell", regexp.MustCompile(`\$\{[a-zA-Z_][a-zA-Z0-9_]*\}`)},
	{"colon-symbol", regexp.MustCompile(`:[a-zA-Z_][a-zA-Z0-9_]*`)},
	{"python", regexp.MustCompile(`%\([a-zA-Z_][a-zA-Z0-9_]*\)s`)},
	{"single-brace", regexp.MustCompile(`\{[a-zA-Z_][a-zA-Z0-9_]*\}`)},
}

var voidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
}
