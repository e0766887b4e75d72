package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const testPreamble = `<title>{{.Title}}</title>
<script src="{{.MathRendererURL}}"></script>
<link href="{{.HighlightThemeURL}}" rel="stylesheet">
<script src="{{.HighlightScriptURL}}"></script>
`

func TestNewPreambleRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"valid template", testPreamble, nil},
		{"title only", "<title>{{.Title}}</title>", nil},
		{"missing title", `<script src="{{.MathRendererURL}}"></script>`, ErrPreambleTemplate},
		{"syntax error", "<title>{{.Title}</title>", ErrPreambleTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewPreambleRenderer(tt.src)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewPreambleRenderer() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPreambleRenderer_Render(t *testing.T) {
	t.Parallel()

	r, err := NewPreambleRenderer(testPreamble)
	if err != nil {
		t.Fatalf("NewPreambleRenderer() error = %v", err)
	}

	var buf bytes.Buffer
	err = r.Render(&buf, PreambleData{
		Title:              "notes",
		MathRendererURL:    "https://cdn.jsdelivr.net/npm/texme@0.9.0",
		HighlightThemeURL:  "https://cdn.example.com/hl/styles/github.min.css",
		HighlightScriptURL: "https://cdn.example.com/hl/highlight.min.js",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"<title>notes</title>",
		`<script src="https://cdn.jsdelivr.net/npm/texme@0.9.0"></script>`,
		`<link href="https://cdn.example.com/hl/styles/github.min.css" rel="stylesheet">`,
		`<script src="https://cdn.example.com/hl/highlight.min.js"></script>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("preamble missing %q\ngot:\n%s", want, got)
		}
	}
}

func TestPreambleRenderer_EscapesTitle(t *testing.T) {
	t.Parallel()

	r, err := NewPreambleRenderer("<title>{{.Title}}</title>")
	if err != nil {
		t.Fatalf("NewPreambleRenderer() error = %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, PreambleData{Title: "a</title><script>x</script>"}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("title not escaped: %s", buf.String())
	}
}

func TestPreambleRenderer_WriteFailure(t *testing.T) {
	t.Parallel()

	r, err := NewPreambleRenderer(testPreamble)
	if err != nil {
		t.Fatalf("NewPreambleRenderer() error = %v", err)
	}

	err = r.Render(failingWriter{}, PreambleData{Title: "x"})
	if !errors.Is(err, ErrPreambleRender) {
		t.Errorf("Render() error = %v, want ErrPreambleRender", err)
	}
}
