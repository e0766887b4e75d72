// Command md2html converts a Markdown file into a minimal HTML document that
// texme and highlight.js render in the browser.
package main

import (
	"context"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}
