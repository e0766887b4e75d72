package pipeline

import (
	"slices"
	"strings"
	"unicode"
)

// fenceMarker opens and closes a fenced code block.
const fenceMarker = "```"

// HTML emitted in place of fence lines. Neither carries a line terminator:
// the next source line follows the tag directly.
const (
	openTagPrefix = `<pre><code class="`
	openTagSuffix = `">`
	CloseTag      = `</code></pre>`
)

// FenceState tracks whether the translator expects an opening or a closing fence.
type FenceState int

const (
	// AwaitingOpen is the initial state: the next bare fence opens a block.
	AwaitingOpen FenceState = iota
	// AwaitingClose means a block is open: the next bare fence closes it.
	AwaitingClose
)

// String implements fmt.Stringer.
func (s FenceState) String() string {
	switch s {
	case AwaitingOpen:
		return "awaiting-open"
	case AwaitingClose:
		return "awaiting-close"
	default:
		return "unknown"
	}
}

// OpenTag returns the opening tag for a code block with the given class.
func OpenTag(class string) string {
	return openTagPrefix + class + openTagSuffix
}

// parseFence reports whether line is a fence delimiter and returns the text
// following the marker once surrounding whitespace is trimmed.
// Only a marker at byte 0 counts; "  ```" or "text ```" are plain lines.
func parseFence(line string) (lang string, ok bool) {
	if !strings.HasPrefix(line, fenceMarker) {
		return "", false
	}
	return strings.TrimRightFunc(line, isFenceSpace)[len(fenceMarker):], true
}

// isFenceSpace extends unicode.IsSpace with the ASCII information separators
// U+001C to U+001F, so "```\x1c" is a bare fence like "```\n".
func isFenceSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// TranslateLine maps one source line to its output line.
//
// Non-fence lines are returned byte for byte with the state untouched.
// A bare fence toggles the state, emitting an opening tag with an empty class
// or the closing tag. A fence carrying a language tag always emits an opening
// tag and forces AwaitingClose, even if a block is already open.
func TranslateLine(line string, state FenceState) (string, FenceState) {
	out, next, _, _ := translate(line, state)
	return out, next
}

// translate is TranslateLine that also reports the parsed fence, so callers
// recording statistics parse each line once.
func translate(line string, state FenceState) (out string, next FenceState, lang string, isFence bool) {
	lang, isFence = parseFence(line)
	switch {
	case !isFence:
		return line, state, "", false
	case lang == "" && state == AwaitingClose:
		return CloseTag, AwaitingOpen, lang, true
	default:
		return OpenTag(lang), AwaitingClose, lang, true
	}
}

// Stats summarizes a translation pass.
type Stats struct {
	Lines      int      // source lines seen
	Opened     int      // opening tags emitted
	Closed     int      // closing tags emitted
	Languages  []string // distinct language tags, in order of first use
	UnclosedAt int      // line of the last opening fence left open, 0 if none
}

// Translator threads a FenceState through successive calls to TranslateLine
// and records what it saw. The zero value is ready to use.
type Translator struct {
	state FenceState
	stats Stats
	seen  map[string]struct{}
}

// NewTranslator returns a Translator in the AwaitingOpen state.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate converts one line and advances the state.
func (t *Translator) Translate(line string) string {
	t.stats.Lines++

	out, next, lang, isFence := translate(line, t.state)
	if isFence {
		t.record(lang, next)
	}
	t.state = next
	return out
}

func (t *Translator) record(lang string, next FenceState) {
	if next == AwaitingOpen {
		t.stats.Closed++
		t.stats.UnclosedAt = 0
		return
	}

	t.stats.Opened++
	t.stats.UnclosedAt = t.stats.Lines
	if lang == "" {
		return
	}
	if t.seen == nil {
		t.seen = make(map[string]struct{})
	}
	if _, dup := t.seen[lang]; !dup {
		t.seen[lang] = struct{}{}
		t.stats.Languages = append(t.stats.Languages, lang)
	}
}

// State returns the current fence state.
func (t *Translator) State() FenceState {
	return t.state
}

// Stats returns a snapshot of the pass so far.
func (t *Translator) Stats() Stats {
	s := t.stats
	s.Languages = slices.Clone(t.stats.Languages)
	return s
}
