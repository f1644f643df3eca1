package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/matcha-hdl/verifmt/pkg/config"
	"github.com/matcha-hdl/verifmt/pkg/format"
	"github.com/matcha-hdl/verifmt/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult is the outcome of formatting a single file.
type PipelineResult struct {
	// Path is the file path that was processed.
	Path string

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	// Original is the content as read.
	Original []byte

	// Formatted is the formatter output. Equal to Original when the file
	// was already formatted.
	Formatted []byte

	// Changed is true if formatting produced different content.
	Changed bool

	// Skipped is true if the file was not processed (not Verilog, or
	// concurrently modified between read and write).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created before writing.
	BackupCreated bool

	// Written is true if the file was rewritten on disk.
	Written bool
}

// Summary returns a short human-readable status for text output.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "formatted (backup created)"
	case pr.Written:
		return "formatted"
	case pr.Changed:
		return "needs formatting"
	default:
		return "ok"
	}
}

// PipelineOptions controls per-file processing.
type PipelineOptions struct {
	// Write rewrites changed files in place.
	Write bool

	// Backup configures backup behavior for rewritten files.
	Backup fsutil.BackupConfig

	// Detector decides whether content is Verilog. Nil accepts everything
	// discovery produced.
	Detector func(path string, content []byte) bool
}

// Pipeline formats a single file with the safety steps around the pure
// engine: read and hash, format in memory, detect concurrent modification,
// back up, write atomically.
type Pipeline struct {
	Formatter config.FormatterConfig
}

// NewPipeline creates a Pipeline using the given formatter configuration.
func NewPipeline(fc config.FormatterConfig) *Pipeline {
	return &Pipeline{Formatter: fc}
}

// ProcessFile runs the pipeline for one file. Formatting itself is total;
// every error returned here is an I/O or concurrency failure.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}
	result.OriginalInfo = info
	result.Original = content

	if opts.Detector != nil && !opts.Detector(path, content) {
		result.Skipped = true
		result.SkipReason = "not a Verilog source file"
		result.Formatted = content
		return result, nil
	}

	formatted := format.Document(string(content), p.Formatter)
	result.Formatted = []byte(formatted)
	result.Changed = formatted != string(content)

	if !opts.Write || !result.Changed {
		return result, nil
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
	default:
	}

	// Refuse to clobber edits made while we were formatting.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("modification check: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.BackupCreated = created

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, result.Formatted, info.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = written

	return result, nil
}

// categorizeError maps fsutil errors onto the pipeline's sentinel errors.
func categorizeError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
