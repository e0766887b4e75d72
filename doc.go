// Package md2html converts Markdown files into minimal HTML documents that are
// rendered in the browser.
//
// # Quick Start
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.ConvertFile(ctx, md2html.FileInput{Source: "notes.md"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.OutputPath) // notes.html
//
// # What the Converter Does
//
// Markdown is not parsed here. The output is the source text, line for line,
// behind a preamble that loads texme (Markdown and LaTeX math) and
// highlight.js (code highlighting). The only rewrite is fenced code blocks:
//
//	```          ->  <pre><code class="">     (opening)
//	```          ->  </code></pre>            (closing)
//	```python    ->  <pre><code class="python">
//
// A fence is recognized only when its three backticks start the line. A fence
// with a language tag always opens a block, even if one is already open.
// Neither rule is validated or corrected; see TranslateLine.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithPreamble(&md2html.Preamble{
//	        MathRendererURL:  md2html.DefaultMathRendererURL,
//	        HighlightBaseURL: md2html.DefaultHighlightBaseURL,
//	        HighlightTheme:   "github",
//	    }),
//	    md2html.WithTemplate("minimal"),
//	    md2html.WithAssetPath("/path/to/assets"),
//	    md2html.WithLogger(slog.Default()),
//	)
//
// Custom preamble templates live in {assetPath}/templates/{name}.html and
// fall back to the built-in ones ("default", "minimal").
//
// # Output Files
//
// ConvertFile streams the source into a temporary file next to the output
// and renames it into place once the whole document is written, so a failed
// conversion never leaves a partial file behind.
package md2html
