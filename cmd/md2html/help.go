package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] <file.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file into an HTML document rendered by texme and highlight.js.")
	fmt.Fprintln(w, "The output is written next to the source with a .html extension.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file")
	fmt.Fprintln(w, "      --title <s>           Document title (default: source base name)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preamble:")
	fmt.Fprintln(w, "      --template <name>     Preamble template: default, minimal")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory holding templates/<name>.html")
	fmt.Fprintln(w, "      --math-url <url>      texme script URL")
	fmt.Fprintln(w, "      --hl-base-url <url>   highlight.js base URL")
	fmt.Fprintln(w, "      --hl-theme <name>     highlight.js theme (e.g. github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (.yaml, .yml, .toml)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show conversion diagnostics")
	fmt.Fprintln(w, "      --completion <shell>  Print a completion script: bash, zsh, fish")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 usage or general error, 2 configuration error, 3 I/O error.")
}

// printVersion prints the version line.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "go-md2html %s\n", Version)
}
