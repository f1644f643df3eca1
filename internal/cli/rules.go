package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matcha-hdl/verifmt/internal/configloader"
	"github.com/matcha-hdl/verifmt/internal/logging"
	"github.com/matcha-hdl/verifmt/pkg/highlight"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// ruleInfo represents a classification rule in JSON output.
type ruleInfo struct {
	Index    int    `json:"index"`
	Pattern  string `json:"pattern"`
	Category string `json:"category"`
	Group    int    `json:"group,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List token classification rules",
		Long: `List the ordered token classification rules built from the current
configuration. Rules paint matches in list order; a later rule repaints
offsets it shares with an earlier one, so position in this list decides
which category wins on overlap.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("get config flag: %w", err)
			}

			loadResult, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
				ExplicitPath: configPath,
			})
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			rules := highlight.DefaultRules(loadResult.Config.Highlight)

			if flags.format == formatJSON {
				return outputRulesJSON(rules)
			}

			logger := logging.NewInteractive()
			logger.Info("classification rules", "count", len(rules))

			for i, rule := range rules {
				logger.Info(fmt.Sprintf("#%d", i),
					logging.FieldCategory, rule.Category.String(),
					logging.FieldPattern, rule.Pattern.String(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(rules []highlight.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for i, rule := range rules {
		infos = append(infos, ruleInfo{
			Index:    i,
			Pattern:  rule.Pattern.String(),
			Category: rule.Category.String(),
			Group:    rule.Group,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
