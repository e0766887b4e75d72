package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for streaming.
var (
	ErrReadSource  = errors.New("failed to read markdown source")
	ErrWriteOutput = errors.New("failed to write HTML output")
)

// TranslateLines reads src one line at a time, translates it with t and
// writes the result to dst before reading the next line.
// Line terminators are preserved exactly, including a missing final newline.
// The context is checked between lines.
func TranslateLines(ctx context.Context, src io.Reader, dst io.Writer, t *Translator) error {
	r := bufio.NewReader(src)
	sw := bufio.NewWriter(dst)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := r.ReadString('\n')
		if line != "" {
			if _, err := io.WriteString(sw, t.Translate(line)); err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return fmt.Errorf("%w: %w", ErrReadSource, readErr)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
