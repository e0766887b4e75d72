package md2html

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Converter writes HTML documents from Markdown sources.
// Create with NewConverter. A Converter holds no per-document state, so
// successive conversions are independent.
type Converter struct {
	cfg          converterConfig
	loader       AssetLoader
	customLoader bool
	logger       *slog.Logger
	renderer     *pipeline.PreambleRenderer
}

// NewConverter creates a Converter with default configuration.
// Returns error if the preamble settings are invalid or the template
// cannot be loaded or parsed.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			preamble: DefaultPreamble(),
			template: DefaultTemplate,
		},
		loader: assets.NewEmbeddedLoader(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.preamble.Validate(); err != nil {
		return nil, err
	}

	// A custom loader wins over an asset path.
	if c.cfg.assetPath != "" && !c.customLoader {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.loader = resolver
	}

	src, err := c.loader.LoadTemplate(c.cfg.template)
	if err != nil {
		return nil, fmt.Errorf("loading template %q: %w", c.cfg.template, err)
	}

	c.renderer, err = pipeline.NewPreambleRenderer(src)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", c.cfg.template, err)
	}

	return c, nil
}

// Convert writes the preamble for in.Title to w, then each line of in.Source
// translated in order. The context is checked between lines.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, w io.Writer, in Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if in.Source == nil {
		return nil, ErrNilSource
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bw := bufio.NewWriter(w)
	if err := c.renderer.Render(bw, c.preambleData(in.Title)); err != nil {
		return nil, err
	}

	t := pipeline.NewTranslator()
	if err := pipeline.TranslateLines(ctx, in.Source, bw, t); err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	stats := t.Stats()
	res := &Result{
		Lines:      stats.Lines,
		CodeBlocks: stats.Opened,
		Languages:  stats.Languages,
		FinalState: t.State(),
		UnclosedAt: stats.UnclosedAt,
	}
	c.logDiagnostics(ctx, in.Title, res)
	return res, nil
}

// ConvertFile converts in.Source into in.Output, deriving missing fields
// from the source path. The output appears only once fully written; a missing
// output directory is created, and removed again if the conversion fails.
// An output naming the source file is rejected with ErrOutputIsSource.
func (c *Converter) ConvertFile(ctx context.Context, in FileInput) (res *Result, err error) {
	if err := ValidateSourcePath(in.Source); err != nil {
		return nil, err
	}

	output := in.Output
	if output == "" {
		output = OutputPath(in.Source)
	}
	if fileutil.SamePath(in.Source, output) {
		return nil, fmt.Errorf("%w: %s", ErrOutputIsSource, output)
	}
	title := in.Title
	if title == "" {
		title = TitleFor(in.Source)
	}

	src, err := os.Open(in.Source) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	defer func() { _ = src.Close() }()

	undoDir, err := fileutil.EnsureDir(filepath.Dir(output))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateOutputDir, err)
	}
	defer func() {
		if err != nil {
			undoDir()
		}
	}()

	dst, err := fileutil.CreateAtomic(output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	defer dst.Abort()

	res, err = c.Convert(ctx, dst, Input{Source: src, Title: title})
	if err != nil {
		return nil, err
	}

	if err = dst.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	res.OutputPath = dst.Target()
	return res, nil
}

func (c *Converter) preambleData(title string) pipeline.PreambleData {
	p := c.cfg.preamble
	return pipeline.PreambleData{
		Title:              title,
		MathRendererURL:    p.MathRendererURL,
		HighlightThemeURL:  p.HighlightThemeURL(),
		HighlightScriptURL: p.HighlightScriptURL(),
	}
}

func (c *Converter) logDiagnostics(ctx context.Context, title string, res *Result) {
	for _, lang := range res.Languages {
		if !pipeline.KnownLanguage(lang) {
			c.logger.DebugContext(ctx, "unknown code block language", "title", title, "language", lang)
		}
	}
	if res.FinalState == AwaitingClose {
		c.logger.InfoContext(ctx, "code block left open at end of document", "title", title, "line", res.UnclosedAt)
	}
	c.logger.DebugContext(ctx, "converted document",
		"title", title,
		"lines", res.Lines,
		"code_blocks", res.CodeBlocks,
		"languages", res.Languages,
	)
}
