package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyPath        = errors.New("source path cannot be empty")
	ErrInvalidExtension = errors.New("source must be a .md file")
	ErrNilSource        = errors.New("input source cannot be nil")

	// I/O errors.
	ErrReadSource      = pipeline.ErrReadSource
	ErrWriteOutput     = pipeline.ErrWriteOutput
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrOutputIsSource  = errors.New("output path is the source file")

	// Preamble errors.
	ErrInvalidPreamble  = errors.New("invalid preamble settings")
	ErrPreambleTemplate = pipeline.ErrPreambleTemplate
	ErrPreambleRender   = pipeline.ErrPreambleRender

	// Asset loading errors.
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName
	ErrPathTraversal    = assets.ErrPathTraversal
	ErrAssetRead        = assets.ErrAssetRead
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
