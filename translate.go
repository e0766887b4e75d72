package md2html

import "github.com/alnah/go-md2html/internal/pipeline"

// FenceState tracks whether the next bare fence opens or closes a code block.
type FenceState = pipeline.FenceState

// Fence states.
const (
	AwaitingOpen  = pipeline.AwaitingOpen
	AwaitingClose = pipeline.AwaitingClose
)

// TranslateLine maps one source line to its output line given the current
// state, and returns the next state. Start a document with AwaitingOpen and
// feed each returned state into the next call.
//
//   - Lines that do not start with ``` come back unchanged, state untouched.
//   - "```" (surrounding whitespace ignored) opens a block with an empty class
//     when AwaitingOpen, and closes it when AwaitingClose.
//   - "```lang" opens a block with class "lang" and always yields AwaitingClose.
//
// Emitted tags carry no line terminator.
func TranslateLine(line string, state FenceState) (string, FenceState) {
	return pipeline.TranslateLine(line, state)
}
