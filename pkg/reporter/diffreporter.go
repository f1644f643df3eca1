package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/matcha-hdl/verifmt/internal/ui/pretty"
	"github.com/matcha-hdl/verifmt/pkg/runner"
)

// DiffReporter writes a unified diff for every file that would change.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewDiffReporter creates a diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled, nil),
	}
}

// Report writes unified diffs for changed files. It returns the number of
// files that changed or would change.
func (r *DiffReporter) Report(ctx context.Context, result *runner.Result) (int, error) {
	writer := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)

	for _, outcome := range result.Files {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		if outcome.Error != nil {
			fmt.Fprintf(writer, "%s\n",
				r.styles.Error.Render(fmt.Sprintf("error: %s: %v", outcome.Path, outcome.Error)))
			continue
		}
		if outcome.Result == nil || !outcome.Result.Changed {
			continue
		}

		diff := GenerateDiff(outcome.Path, outcome.Result.Original, outcome.Result.Formatted)
		if !diff.HasChanges() {
			continue
		}

		r.writeDiff(writer, diff)
	}

	if err := writer.Flush(); err != nil {
		return 0, fmt.Errorf("flushing output: %w", err)
	}

	return result.Stats.FilesChanged, nil
}

func (r *DiffReporter) writeDiff(writer *bufio.Writer, diff *Diff) {
	path := strings.TrimPrefix(diff.Path, "/")

	fmt.Fprintln(writer, r.styles.DiffHeader.Render("--- a/"+path))
	fmt.Fprintln(writer, r.styles.DiffHeader.Render("+++ b/"+path))

	for _, hunk := range diff.Hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		fmt.Fprintln(writer, r.styles.DiffHunk.Render(header))

		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				fmt.Fprintln(writer, r.styles.DiffAdd.Render("+"+line.Content))
			case DiffLineRemove:
				fmt.Fprintln(writer, r.styles.DiffRemove.Render("-"+line.Content))
			default:
				fmt.Fprintln(writer, r.styles.DiffContext.Render(" "+line.Content))
			}
		}
	}
}
