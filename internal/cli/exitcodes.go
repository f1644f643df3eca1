package cli

import "github.com/matcha-hdl/verifmt/pkg/runner"

// Exit codes for verifmt.
const (
	// ExitSuccess indicates successful execution with no pending changes.
	ExitSuccess = 0

	// ExitError indicates processing or I/O errors.
	ExitError = 1

	// ExitCheckFailed indicates check mode found files needing formatting.
	ExitCheckFailed = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65
)

// ExitCodeFromResult determines the exit code based on result and check mode.
func ExitCodeFromResult(result *runner.Result, check bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasErrors() {
		return ExitError
	}

	if check && result.HasChanges() {
		return ExitCheckFailed
	}

	return ExitSuccess
}
