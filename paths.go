package md2html

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// File extensions.
const (
	MarkdownExt = ".md"
	HTMLExt     = ".html"
)

// ValidateSourcePath checks that path names a Markdown file.
// The check is a case-sensitive suffix match: "notes.MD" is rejected.
func ValidateSourcePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if !strings.HasSuffix(path, MarkdownExt) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, path)
	}
	return nil
}

// OutputPath returns the HTML path next to a Markdown source:
// "docs/notes.md" becomes "docs/notes.html".
func OutputPath(source string) string {
	return fileutil.SwapSuffix(source, MarkdownExt, HTMLExt)
}

// OutputPathIn returns the HTML path for source inside dir.
// An empty dir is the same as OutputPath.
func OutputPathIn(source, dir string) string {
	if dir == "" {
		return OutputPath(source)
	}
	return filepath.Join(dir, filepath.Base(OutputPath(source)))
}

// TitleFor returns the document title derived from a source path:
// its base name without the .md extension.
func TitleFor(source string) string {
	return strings.TrimSuffix(filepath.Base(source), MarkdownExt)
}
