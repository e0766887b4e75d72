package pipeline

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Sentinel errors for preamble rendering.
var (
	ErrPreambleTemplate = errors.New("invalid preamble template")
	ErrPreambleRender   = errors.New("preamble rendering failed")
)

// PreambleData holds the values substituted into a preamble template.
type PreambleData struct {
	Title              string
	MathRendererURL    string
	HighlightThemeURL  string
	HighlightScriptURL string
}

// PreambleRenderer renders the HTML head written before the document body.
type PreambleRenderer struct {
	tmpl *template.Template
}

// NewPreambleRenderer parses a preamble template.
// The template must reference .Title; everything else is optional so that
// custom templates can drop the math renderer or the highlighter.
func NewPreambleRenderer(src string) (*PreambleRenderer, error) {
	if !strings.Contains(src, ".Title") {
		return nil, fmt.Errorf("%w: template does not reference .Title", ErrPreambleTemplate)
	}

	tmpl, err := template.New("preamble").Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreambleTemplate, err)
	}
	return &PreambleRenderer{tmpl: tmpl}, nil
}

// Render writes the preamble to w. The title is HTML-escaped.
func (p *PreambleRenderer) Render(w io.Writer, data PreambleData) error {
	if err := p.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("%w: %w", ErrPreambleRender, err)
	}
	return nil
}
