// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForExtension returns a hint for sources that are not Markdown files.
func ForExtension() string {
	return format("the input must be a Markdown file whose name ends in .md")
}

// ForSourceNotFound returns a hint for a missing source file.
func ForSourceNotFound() string {
	return format("check the path; relative paths are resolved from the current directory")
}

// ForPermission returns a hint for permission errors on the source or output.
func ForPermission() string {
	return format("check read access to the source and write access to the output directory")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating the file in ~/.config/go-md2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(slashed(p), ".config/go-md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputIsSource returns a hint for an --output path naming the source.
func ForOutputIsSource() string {
	return format("pass a different --output path, or omit it to write <name>.html next to the source")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists the available templates.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or add templates/<name>.html under --asset-path")
}

// slashed normalizes Windows separators for substring checks.
func slashed(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
