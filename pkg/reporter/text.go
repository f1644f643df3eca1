package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matcha-hdl/verifmt/internal/ui/pretty"
	"github.com/matcha-hdl/verifmt/pkg/runner"
)

// TextReporter writes human-readable per-file status lines.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled, nil),
	}
}

// Report writes one status line per file, error details, and an optional
// summary. It returns the number of files that changed or would change.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (int, error) {
	writer := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)

	for _, outcome := range result.Files {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		path := r.displayPath(outcome.Path)

		if outcome.Error != nil {
			fmt.Fprintf(writer, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(outcome.Error.Error()))
			continue
		}
		if outcome.Result == nil {
			continue
		}

		summary := outcome.Result.Summary()
		style := r.summaryStyle(outcome)

		// Unchanged files are noise in quiet mode.
		if r.opts.Quiet && !outcome.Result.Changed && !outcome.Result.Skipped {
			continue
		}

		fmt.Fprintf(writer, "%s: %s\n",
			r.styles.FilePath.Render(path),
			style.Render(summary))
	}

	for _, err := range result.Errors {
		fmt.Fprintf(writer, "%s\n", r.styles.Error.Render("error: "+err.Error()))
	}

	if r.opts.ShowSummary {
		r.writeSummary(writer, result)
	}

	if err := writer.Flush(); err != nil {
		return 0, fmt.Errorf("flushing output: %w", err)
	}

	return result.Stats.FilesChanged, nil
}

// summaryStyle picks the style matching the outcome's status.
func (r *TextReporter) summaryStyle(outcome runner.FileOutcome) pretty.Style {
	switch {
	case outcome.Result.Skipped:
		return r.styles.Skipped
	case outcome.Result.Written:
		return r.styles.Success
	case outcome.Result.Changed:
		return r.styles.Changed
	default:
		return r.styles.Dim
	}
}

func (r *TextReporter) writeSummary(writer *bufio.Writer, result *runner.Result) {
	stats := result.Stats

	fmt.Fprintf(writer, "\n%s %d file(s) processed",
		r.styles.SummaryTitle.Render("Summary:"),
		stats.FilesProcessed)

	var parts []string
	if stats.FilesChanged > 0 {
		parts = append(parts, fmt.Sprintf("%d changed", stats.FilesChanged))
	}
	if stats.FilesWritten > 0 {
		parts = append(parts, fmt.Sprintf("%d written", stats.FilesWritten))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", stats.FilesSkipped))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, fmt.Sprintf("%d errored", stats.FilesErrored))
	}

	if len(parts) > 0 {
		fmt.Fprintf(writer, " (%s)", strings.Join(parts, ", "))
	}
	fmt.Fprintln(writer)
}

// displayPath makes a path relative to the working directory when possible.
func (r *TextReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
