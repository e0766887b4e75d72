package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("usage error")
	ErrNoInput     = fmt.Errorf("%w: expected one Markdown file", ErrUsage)
	ErrTooManyArgs = fmt.Errorf("%w: too many arguments", ErrUsage)
)

// runMain parses args (including the program name), runs the conversion and
// returns the process exit code. Nothing is written to disk on usage errors.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch {
	case flags.common.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.common.version:
		printVersion(env.Stdout)
		return ExitSuccess
	case flags.common.completion != "":
		if err := GenerateCompletion(env.Stdout, Shell(flags.common.completion)); err != nil {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	}

	err = run(ctx, positional, flags, env)
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, flags))
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(env.Stderr)
		printUsage(env.Stderr)
	}
	return exitCodeFor(err)
}

// run converts the single source named in positional.
func run(ctx context.Context, positional []string, flags *cliFlags, env *Environment) error {
	source, err := sourceArg(positional)
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI wins over config
	mergeFlags(flags, cfg)

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	conv, err := md2html.NewConverter(
		md2html.WithPreamble(preambleFrom(cfg)),
		md2html.WithTemplate(cfg.Preamble.Template),
		md2html.WithAssetPath(cfg.Assets.BasePath),
		md2html.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	output := resolveOutputPath(source, flags.output.path, cfg)

	logger.Debug("converting", "source", source, "output", output)

	res, err := conv.ConvertFile(ctx, md2html.FileInput{
		Source: source,
		Output: output,
		Title:  flags.output.title,
	})
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", res.OutputPath)
	}
	return nil
}

// sourceArg validates the positional arguments and returns the source path.
func sourceArg(positional []string) (string, error) {
	switch len(positional) {
	case 0:
		return "", ErrNoInput
	case 1:
	default:
		return "", fmt.Errorf("%w: got %d", ErrTooManyArgs, len(positional))
	}

	source := strings.TrimSpace(positional[0])
	if err := md2html.ValidateSourcePath(source); err != nil {
		if errors.Is(err, md2html.ErrEmptyPath) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return source, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.preamble.template != "" {
		cfg.Preamble.Template = flags.preamble.template
	}
	if flags.preamble.mathURL != "" {
		cfg.Preamble.MathRendererURL = flags.preamble.mathURL
	}
	if flags.preamble.hlBaseURL != "" {
		cfg.Preamble.HighlightBaseURL = flags.preamble.hlBaseURL
	}
	if flags.preamble.hlTheme != "" {
		cfg.Preamble.HighlightTheme = flags.preamble.hlTheme
	}
	if flags.preamble.assetPath != "" {
		cfg.Assets.BasePath = flags.preamble.assetPath
	}
}

// preambleFrom fills unset config values with the library defaults.
func preambleFrom(cfg *config.Config) *md2html.Preamble {
	p := md2html.DefaultPreamble()
	if cfg.Preamble.MathRendererURL != "" {
		p.MathRendererURL = cfg.Preamble.MathRendererURL
	}
	if cfg.Preamble.HighlightBaseURL != "" {
		p.HighlightBaseURL = cfg.Preamble.HighlightBaseURL
	}
	if cfg.Preamble.HighlightTheme != "" {
		p.HighlightTheme = cfg.Preamble.HighlightTheme
	}
	return p
}

// resolveOutputPath picks the output file: --output, then output.defaultDir
// from config, then the sibling .html file.
func resolveOutputPath(source, flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return md2html.OutputPathIn(source, cfg.Output.DefaultDir)
}

// newLogger returns a text logger writing to w. Warnings are shown by default.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, flags *cliFlags) string {
	switch {
	case errors.Is(err, md2html.ErrInvalidExtension):
		return hints.ForExtension()
	case errors.Is(err, config.ErrConfigNotFound):
		if fileutil.IsFilePath(flags.common.config) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(flags.common.config))
	case errors.Is(err, md2html.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(assets.NewEmbeddedLoader().TemplateNames())
	case errors.Is(err, md2html.ErrOutputIsSource):
		return hints.ForOutputIsSource()
	case errors.Is(err, md2html.ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, fs.ErrPermission):
		return hints.ForPermission()
	case errors.Is(err, md2html.ErrReadSource) && errors.Is(err, fs.ErrNotExist):
		return hints.ForSourceNotFound()
	}
	return ""
}
