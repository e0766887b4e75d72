package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// Exit codes for the md2html CLI.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 1 // Bad arguments; same status as general errors
	ExitConfig  = 2 // Invalid config file, preamble settings or template
	ExitIO      = 3 // Source missing or unreadable, output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage errors (exit 1)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, md2html.ErrOutputIsSource) {
		return ExitUsage
	}

	// Configuration errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, md2html.ErrInvalidPreamble) ||
		errors.Is(err, md2html.ErrPreambleTemplate) ||
		errors.Is(err, md2html.ErrTemplateNotFound) ||
		errors.Is(err, md2html.ErrInvalidAssetName) ||
		errors.Is(err, md2html.ErrPathTraversal) ||
		errors.Is(err, md2html.ErrAssetRead) ||
		errors.Is(err, md2html.ErrInvalidAssetPath) {
		return ExitConfig
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2html.ErrReadSource) ||
		errors.Is(err, md2html.ErrWriteOutput) ||
		errors.Is(err, md2html.ErrCreateOutputDir) {
		return ExitIO
	}

	return ExitGeneral
}
