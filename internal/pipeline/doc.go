// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The pipeline is shallow: Markdown itself is rendered in the
// browser by texme, so the only server-side work is
//   - translating fenced code-block delimiters into <pre><code> tags
//   - rendering the HTML preamble that loads the renderer and highlight.js
//   - streaming the source through the translator, line by line
//
// Translation state is an explicit FenceState value owned by a Translator.
// Nothing in this package keeps package-level mutable state, so any number of
// conversions may run one after another (or concurrently, each with its own
// Translator) without affecting each other.
package pipeline
