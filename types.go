package md2html

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
)

// Preamble defaults: texme 0.9.0 and highlight.js 9.12.0 with the
// atom-one-dark theme.
const (
	DefaultMathRendererURL  = "https://cdn.jsdelivr.net/npm/texme@0.9.0"
	DefaultHighlightBaseURL = "https://cdn.bootcss.com/highlight.js/9.12.0"
	DefaultHighlightTheme   = "atom-one-dark"
)

// DefaultTemplate is the built-in preamble template name.
const DefaultTemplate = "default"

// Preamble configures the scripts and stylesheet referenced by the HTML head.
type Preamble struct {
	MathRendererURL  string // texme script
	HighlightBaseURL string // highlight.js release root, holding styles/ and highlight.min.js
	HighlightTheme   string // highlight.js style name, e.g. "github"
}

// DefaultPreamble returns the preamble settings with default values.
func DefaultPreamble() *Preamble {
	return &Preamble{
		MathRendererURL:  DefaultMathRendererURL,
		HighlightBaseURL: DefaultHighlightBaseURL,
		HighlightTheme:   DefaultHighlightTheme,
	}
}

// Validate checks that URLs are absolute http(s) URLs and that the theme is a
// bare name. Returns nil if p is nil (nil means use defaults).
func (p *Preamble) Validate() error {
	if p == nil {
		return nil
	}

	if err := validateCDNURL("math renderer URL", p.MathRendererURL); err != nil {
		return err
	}
	if err := validateCDNURL("highlight base URL", p.HighlightBaseURL); err != nil {
		return err
	}
	if p.HighlightTheme == "" {
		return fmt.Errorf("%w: highlight theme cannot be empty", ErrInvalidPreamble)
	}
	if strings.ContainsAny(p.HighlightTheme, "/\\?#\"'<> ") || strings.Contains(p.HighlightTheme, "..") {
		return fmt.Errorf("%w: highlight theme %q must be a plain name", ErrInvalidPreamble, p.HighlightTheme)
	}
	return nil
}

// HighlightThemeURL returns the stylesheet URL for the configured theme.
func (p *Preamble) HighlightThemeURL() string {
	return strings.TrimRight(p.HighlightBaseURL, "/") + "/styles/" + p.HighlightTheme + ".min.css"
}

// HighlightScriptURL returns the highlight.js script URL.
func (p *Preamble) HighlightScriptURL() string {
	return strings.TrimRight(p.HighlightBaseURL, "/") + "/highlight.min.js"
}

func validateCDNURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrInvalidPreamble, field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPreamble, field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s %q must be an absolute http(s) URL", ErrInvalidPreamble, field, raw)
	}
	return nil
}

// Input is a single in-memory or streamed conversion request.
type Input struct {
	Source io.Reader // Markdown text, read line by line
	Title  string    // <title> content, HTML-escaped on output
}

// FileInput is a file-to-file conversion request.
type FileInput struct {
	Source string // Markdown file, must end in .md
	Output string // HTML file; empty = OutputPath(Source)
	Title  string // empty = TitleFor(Source)
}

// Result describes a finished conversion.
type Result struct {
	OutputPath string     // set by ConvertFile only
	Lines      int        // source lines translated
	CodeBlocks int        // opening tags emitted
	Languages  []string   // distinct fence language tags, in order of first use
	FinalState FenceState // AwaitingClose means the last block was never closed
	UnclosedAt int        // line of the unmatched opening fence, 0 if balanced
}

// AssetLoader supplies preamble templates by name.
// Implementations may load from embedded assets, a directory, a database, etc.
type AssetLoader interface {
	// LoadTemplate returns html/template source for name.
	// Should wrap ErrTemplateNotFound when name is unknown.
	LoadTemplate(name string) (string, error)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	preamble  *Preamble
	template  string
	assetPath string
}

// WithPreamble sets the CDN URLs and highlight theme.
// A nil preamble keeps the defaults.
func WithPreamble(p *Preamble) Option {
	return func(c *Converter) {
		if p != nil {
			c.cfg.preamble = p
		}
	}
}

// WithTemplate selects the preamble template by name.
func WithTemplate(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.cfg.template = name
		}
	}
}

// WithAssetPath loads templates from dir first, falling back to the
// built-in templates. Ignored when WithAssetLoader is also given.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithAssetLoader replaces the template source entirely.
func WithAssetLoader(l AssetLoader) Option {
	return func(c *Converter) {
		c.loader = l
		c.customLoader = true
	}
}

// WithLogger sets the logger used for conversion diagnostics.
// Panics if l is nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("md2html: WithLogger logger must not be nil")
	}
	return func(c *Converter) {
		c.logger = l
	}
}
