package pipeline

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Class prefixes highlight.js accepts in front of a language name.
var languageClassPrefixes = []string{"language-", "lang-"}

// KnownLanguage reports whether a fence language tag names a language known
// to the chroma lexer registry. It only feeds diagnostics: unknown tags are
// still emitted verbatim as the code block class.
func KnownLanguage(tag string) bool {
	name := strings.TrimSpace(tag)
	for _, prefix := range languageClassPrefixes {
		name = strings.TrimPrefix(name, prefix)
	}
	if name == "" || strings.ContainsAny(name, " \t") {
		return false
	}
	return lexers.Get(name) != nil
}
