package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matcha-hdl/verifmt/internal/configloader"
	"github.com/matcha-hdl/verifmt/internal/logging"
	"github.com/matcha-hdl/verifmt/pkg/config"
	"github.com/matcha-hdl/verifmt/pkg/fsutil"
	"github.com/matcha-hdl/verifmt/pkg/langdetect"
	"github.com/matcha-hdl/verifmt/pkg/reporter"
	"github.com/matcha-hdl/verifmt/pkg/runner"
)

// ErrCheckFailed is returned when check mode finds files needing formatting.
var ErrCheckFailed = errors.New("files need formatting")

// ErrFilesFailed is returned when one or more files could not be processed.
var ErrFilesFailed = errors.New("some files failed to process")

type fmtFlags struct {
	mode      string
	format    string
	diff      bool
	ignore    []string
	quiet     bool
	noDetect  bool
	useSpaces bool
	indent    int
}

func newFmtCommand() *cobra.Command {
	var cfg config.Config
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Format Verilog source files",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, &cfg, flags)
		},
	}

	addFmtFlags(cmd, &cfg, flags)

	return cmd
}

const fmtLongDescription = `Format Verilog and SystemVerilog source files.

By default, formats all .v, .sv, .vh, and .svh files in the current
directory and subdirectories, printing which files would change. Specify
paths to format specific files or directories.

Examples:
  verifmt fmt                    # Show which files would change
  verifmt fmt rtl/               # Format the rtl directory
  verifmt fmt top.v              # Format a single file
  verifmt fmt -w                 # Rewrite files in place
  verifmt fmt --check            # Exit nonzero if formatting is needed
  verifmt fmt --diff             # Show unified diffs without writing
  verifmt fmt --mode flat        # Use the space-based flat engine
  verifmt fmt --format json      # Output as JSON for CI`

func runFmt(cmd *cobra.Command, args []string, cfg *config.Config, flags *fmtFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("mode") {
		cfg.Formatter.Mode = config.Mode(flags.mode)
	}
	if cmd.Flags().Changed("indent") {
		cfg.Formatter.IndentSize = flags.indent
	}
	cfg.Ignore = flags.ignore

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	// The --spaces flag overrides whatever the mode default says.
	if flags.useSpaces {
		finalCfg.Formatter.UseTabs = false
	}

	logger.Debug("configuration loaded",
		logging.FieldMode, finalCfg.Formatter.Mode,
		logging.FieldWrite, finalCfg.Write,
		logging.FieldCheck, finalCfg.Check,
		logging.FieldJobs, finalCfg.Jobs,
	)

	fmtRunner := runner.New(runner.NewPipeline(finalCfg.Formatter))

	backup := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
	if finalCfg.NoBackups || !finalCfg.Backups.Enabled || finalCfg.Backups.Mode == "none" {
		backup = fsutil.BackupConfig{Enabled: false, Mode: fsutil.BackupModeNone}
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Pipeline: runner.PipelineOptions{
			Write:  finalCfg.Write && !finalCfg.Check,
			Backup: backup,
		},
	}
	if !flags.noDetect {
		runOpts.Pipeline.Detector = langdetect.IsVerilog
	}

	logger.Debug("starting format run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := fmtRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("format run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	formatStr := flags.format
	if flags.diff {
		formatStr = "diff"
	}
	format, err := reporter.ParseFormat(formatStr)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: !flags.quiet && format == reporter.FormatText,
		Quiet:       flags.quiet,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, finalCfg.Check) {
	case ExitError:
		return ErrFilesFailed
	case ExitCheckFailed:
		return ErrCheckFailed
	default:
		return nil
	}
}

func addFmtFlags(cmd *cobra.Command, cfg *config.Config, flags *fmtFlags) {
	cmd.Flags().BoolVarP(&cfg.Write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&cfg.Check, "check", false, "exit nonzero if any file needs formatting, without writing")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "show unified diffs instead of status lines")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "indentation engine: hierarchical, flat")
	cmd.Flags().IntVar(&flags.indent, "indent", 0, "spaces per indent level (flat mode)")
	cmd.Flags().BoolVar(&flags.useSpaces, "spaces", false, "indent with spaces even in hierarchical mode")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when writing")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "only report files that change")
	cmd.Flags().BoolVar(&flags.noDetect, "no-detect", false, "skip content-based language detection")
}
