package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds verbosity and meta flags.
type commonFlags struct {
	config     string
	quiet      bool
	verbose    bool
	version    bool
	help       bool
	completion string
}

// outputFlags holds output destination flags.
type outputFlags struct {
	path  string
	title string
}

// preambleFlags holds flags that shape the HTML head.
type preambleFlags struct {
	template  string
	assetPath string
	mathURL   string
	hlBaseURL string
	hlTheme   string
}

// cliFlags holds every md2html flag.
type cliFlags struct {
	common   commonFlags
	output   outputFlags
	preamble preambleFlags
}

func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output HTML file (default: next to the source)")
	fs.StringVar(&f.title, "title", "", "document title (default: source base name)")
}

func addPreambleFlags(fs *flag.FlagSet, f *preambleFlags) {
	fs.StringVar(&f.template, "template", "", "preamble template name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.mathURL, "math-url", "", "texme script URL")
	fs.StringVar(&f.hlBaseURL, "hl-base-url", "", "highlight.js base URL")
	fs.StringVar(&f.hlTheme, "hl-theme", "", "highlight.js theme name")
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show conversion diagnostics")
	fs.StringVar(&f.completion, "completion", "", "print a completion script: bash, zsh, fish")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
}

// newFlagSet registers all flags into f. Parsing errors are returned, not
// printed; the caller decides what to show.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	addOutputFlags(fs, &f.output)
	addPreambleFlags(fs, &f.preamble)
	addCommonFlags(fs, &f.common)

	return fs
}

// parseFlags parses args (without the program name) and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
