package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/matcha-hdl/verifmt/pkg/runner"
)

// JSONReporter writes machine-readable run results.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// jsonFile is the per-file entry in JSON output.
type jsonFile struct {
	Path       string `json:"path"`
	Changed    bool   `json:"changed"`
	Written    bool   `json:"written,omitempty"`
	Skipped    bool   `json:"skipped,omitempty"`
	SkipReason string `json:"skip_reason,omitempty"`
	Backup     bool   `json:"backup_created,omitempty"`
	Error      string `json:"error,omitempty"`
}

// jsonOutput is the top-level JSON document.
type jsonOutput struct {
	Files   []jsonFile  `json:"files"`
	Summary jsonSummary `json:"summary"`
}

type jsonSummary struct {
	Discovered int `json:"files_discovered"`
	Processed  int `json:"files_processed"`
	Changed    int `json:"files_changed"`
	Written    int `json:"files_written"`
	Skipped    int `json:"files_skipped"`
	Errored    int `json:"files_errored"`
}

// Report writes the run result as a single JSON document. It returns the
// number of files that changed or would change.
func (r *JSONReporter) Report(ctx context.Context, result *runner.Result) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	output := jsonOutput{
		Files: make([]jsonFile, 0, len(result.Files)),
		Summary: jsonSummary{
			Discovered: result.Stats.FilesDiscovered,
			Processed:  result.Stats.FilesProcessed,
			Changed:    result.Stats.FilesChanged,
			Written:    result.Stats.FilesWritten,
			Skipped:    result.Stats.FilesSkipped,
			Errored:    result.Stats.FilesErrored,
		},
	}

	for _, outcome := range result.Files {
		entry := jsonFile{Path: outcome.Path}
		if outcome.Error != nil {
			entry.Error = outcome.Error.Error()
		} else if outcome.Result != nil {
			entry.Changed = outcome.Result.Changed
			entry.Written = outcome.Result.Written
			entry.Skipped = outcome.Result.Skipped
			entry.SkipReason = outcome.Result.SkipReason
			entry.Backup = outcome.Result.BackupCreated
		}
		output.Files = append(output.Files, entry)
	}

	writer := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encoding JSON output: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return 0, fmt.Errorf("flushing output: %w", err)
	}

	return result.Stats.FilesChanged, nil
}
