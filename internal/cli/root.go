// Package cli provides the Cobra command structure for verifmt.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matcha-hdl/verifmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root verifmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "verifmt",
		Short: "A fast Verilog and SystemVerilog formatter and highlighter",
		Long: `verifmt formats Verilog and SystemVerilog source files and classifies
their tokens for syntax highlighting.

Two indentation engines are available: the hierarchical engine indents with
tabs and tracks module scope, and the flat engine indents with spaces using
a broader keyword trigger set. Module port lists can be reflowed to one port
per line. Formatting is safe for automation: writes are atomic, concurrent
edits are detected, and sidecar backups are created by default.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
