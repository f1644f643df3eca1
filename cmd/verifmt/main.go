// Package main is the entry point for the verifmt CLI.
package main

import (
	"errors"
	"os"

	"github.com/matcha-hdl/verifmt/internal/cli"
	"github.com/matcha-hdl/verifmt/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, cli.ErrCheckFailed):
			// Signal for CI; the reporter already printed the details.
			return cli.ExitCheckFailed
		case errors.Is(err, cli.ErrFilesFailed):
			return cli.ExitError
		default:
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
			return cli.ExitError
		}
	}

	return cli.ExitSuccess
}
