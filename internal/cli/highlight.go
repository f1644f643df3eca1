package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matcha-hdl/verifmt/internal/configloader"
	"github.com/matcha-hdl/verifmt/internal/ui/pretty"
	"github.com/matcha-hdl/verifmt/pkg/highlight"
)

type highlightFlags struct {
	format string
}

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Classify and colorize Verilog source",
		Long: `Classify the tokens of a Verilog source file and print the result.

Text output renders the source with ANSI colors from the configured theme.
JSON output emits the classified spans per line, with byte offsets, for
editor and tooling integration. Reads from stdin when no file is given.

Examples:
  verifmt highlight top.v              # Colorized source to stdout
  verifmt highlight top.v --format json
  cat top.v | verifmt highlight`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

// spanJSON is one classified span in JSON output.
type spanJSON struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Category string `json:"category"`
}

// lineJSON pairs a source line with its spans in JSON output.
type lineJSON struct {
	Line  string     `json:"line"`
	Spans []spanJSON `json:"spans"`
}

func runHighlight(cmd *cobra.Command, args []string, flags *highlightFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	content, err := readHighlightInput(cmd, args)
	if err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	rules := highlight.DefaultRules(loadResult.Config.Highlight)
	classified := highlight.Document(string(content), rules)

	switch flags.format {
	case "json":
		return writeHighlightJSON(cmd.OutOrStdout(), classified)
	case "text", "":
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			colorMode = "auto"
		}
		return writeHighlightText(cmd.OutOrStdout(), classified, colorMode, loadResult.Config.Highlight.Theme)
	default:
		return fmt.Errorf("unknown format %q; valid formats: text, json", flags.format)
	}
}

// readHighlightInput reads the named file, or stdin when no file is given.
func readHighlightInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return content, nil
}

func writeHighlightText(out io.Writer, classified []highlight.LineSpans, colorMode string, theme map[string]string) error {
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out), theme)

	writer := bufio.NewWriter(out)
	for _, ls := range classified {
		fmt.Fprintln(writer, styles.RenderLine(ls.Line, ls.Spans))
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

func writeHighlightJSON(out io.Writer, classified []highlight.LineSpans) error {
	lines := make([]lineJSON, 0, len(classified))
	for _, ls := range classified {
		spans := make([]spanJSON, 0, len(ls.Spans))
		for _, span := range ls.Spans {
			spans = append(spans, spanJSON{
				Start:    span.Start,
				End:      span.End,
				Category: span.Category.String(),
			})
		}
		lines = append(lines, lineJSON{Line: ls.Line, Spans: spans})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(lines); err != nil {
		return fmt.Errorf("encoding spans: %w", err)
	}
	return nil
}
