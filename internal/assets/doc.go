// Package assets provides the HTML preamble templates written before the
// translated document body.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// Built-in templates:
//
//   - default: texme for Markdown and math, highlight.js for code blocks
//   - minimal: texme only, no syntax highlighting
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.html
//
// Templates are html/template sources receiving Title, MathRendererURL,
// HighlightThemeURL and HighlightScriptURL.
//
// # Security
//
// Template names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
