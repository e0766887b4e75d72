package main

// Notes:
// - exitCodeFor: we test the sentinel errors from the md2html and config
//   packages plus wrapped errors to verify the errors.Is() chain.
// - Exit code constants: we verify custom codes stay below 126.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Usage errors (exit 1)
		{"usage", ErrUsage, ExitUsage},
		{"no input", ErrNoInput, ExitUsage},
		{"too many args", ErrTooManyArgs, ExitUsage},
		{"bad extension", fmt.Errorf("%w: %w", ErrUsage, md2html.ErrInvalidExtension), ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"output is source", md2html.ErrOutputIsSource, ExitUsage},

		// Configuration errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitConfig},
		{"config parse", config.ErrConfigParse, ExitConfig},
		{"field too long", config.ErrFieldTooLong, ExitConfig},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitConfig},
		{"invalid preamble", md2html.ErrInvalidPreamble, ExitConfig},
		{"preamble template", md2html.ErrPreambleTemplate, ExitConfig},
		{"template not found", md2html.ErrTemplateNotFound, ExitConfig},
		{"invalid asset name", md2html.ErrInvalidAssetName, ExitConfig},
		{"invalid asset path", md2html.ErrInvalidAssetPath, ExitConfig},
		{"path traversal", md2html.ErrPathTraversal, ExitConfig},
		{"asset read", md2html.ErrAssetRead, ExitConfig},
		{"asset read over not exist", fmt.Errorf("%w: %w", md2html.ErrAssetRead, os.ErrNotExist), ExitConfig},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read source", md2html.ErrReadSource, ExitIO},
		{"write output", md2html.ErrWriteOutput, ExitIO},
		{"create output dir", md2html.ErrCreateOutputDir, ExitIO},
		{"wrapped read source", fmt.Errorf("%w: %w", md2html.ErrReadSource, os.ErrNotExist), ExitIO},

		// General errors (exit 1)
		{"unknown error", errors.New("something failed"), ExitGeneral},
		{"cancelled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitUsage != 1 || ExitGeneral != 1 {
		t.Errorf("ExitUsage = %d, ExitGeneral = %d, want 1", ExitUsage, ExitGeneral)
	}
	for _, code := range []int{ExitConfig, ExitIO} {
		if code <= 1 || code >= 126 {
			t.Errorf("custom exit code %d should be in (1, 126)", code)
		}
	}
}
