package cli

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matcha-hdl/verifmt/internal/configloader"
	"github.com/matcha-hdl/verifmt/internal/ui/pretty"
)

// HelpStyles holds the lipgloss styles for rendered help output.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	EnvVar      lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
	Dim         lipgloss.Style
}

// NewHelpStyles creates help styles for the given color mode. Without
// color every field is the zero style, which renders text unchanged.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		return &HelpStyles{}
	}
	return &HelpStyles{
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		EnvVar:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Description: lipgloss.NewStyle(),
		Example:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled usage and help text for the command tree.
// The root help screen additionally lists the VERIFMT_* environment
// variables next to the global flags they mirror.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a help formatter, resolving the color mode
// against the given writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

const usageTemplate = `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ styleHeading "Aliases:" }}
  {{ styleDim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleExample .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

// helpTemplate prefixes the usage block with the long description and, on
// the root command only, appends the environment variable reference.
func (h *HelpFormatter) helpTemplate() string {
	return `{{with (or .Long .Short)}}{{ trimTrailing . }}

{{end}}` + usageTemplate + `{{- if not .HasParent}}

{{ styleHeading "Environment:" }}
{{ envSection }}
{{- end}}
`
}

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"styleCommand":    h.styles.Command.Render,
		"styleHeading":    h.styles.Heading.Render,
		"styleSubcommand": h.styles.Subcommand.Render,
		"styleDim":        h.styles.Dim.Render,
		"styleExample":    h.styles.Example.Render,
		"styleFlags":      h.styleFlagUsages,
		"envSection":      h.environmentSection,
		"rpad":            rpad,
		"join":            strings.Join,
		"trimTrailing":    trimTrailing,
	}
}

// environmentSection renders the supported VERIFMT_* variables as a
// sorted, aligned block matching the flag layout.
func (h *HelpFormatter) environmentSection() string {
	vars := configloader.ListEnvVars()

	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %s   %s",
			h.styles.EnvVar.Render(rpad(name, width)),
			h.styles.Description.Render(vars[name]))
	}
	return b.String()
}

// flagGap matches the column gap pflag leaves between a flag spec and its
// description.
var flagGap = regexp.MustCompile(`  +`)

// styleFlagUsages recolors the pflag usage block line by line, keeping
// pflag's own column alignment.
func (h *HelpFormatter) styleFlagUsages(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine splits one usage line at the gap after the flag spec and
// styles the two halves independently.
func (h *HelpFormatter) styleFlagLine(line string) string {
	spec := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(spec)]

	desc := ""
	if loc := flagGap.FindStringIndex(spec); loc != nil {
		desc = spec[loc[1]:]
		spec = spec[:loc[0]]
	}
	if spec == "" {
		return line
	}

	styled := indent + h.styleFlagSpec(spec)
	if desc != "" {
		styled += "   " + h.styles.Description.Render(desc)
	}
	return styled
}

// styleFlagSpec colors the flag names in a spec like "-w, --write" or
// "--mode string", dimming the value type.
func (h *HelpFormatter) styleFlagSpec(spec string) string {
	words := strings.Fields(spec)
	for i, word := range words {
		name := strings.TrimSuffix(word, ",")
		if strings.HasPrefix(name, "-") {
			words[i] = h.styles.Flag.Render(name) + word[len(name):]
		} else {
			words[i] = h.styles.Dim.Render(word)
		}
	}
	return strings.Join(words, " ")
}

// ApplyToCommand installs the styled usage and help rendering on cmd and,
// through cobra inheritance, on every subcommand.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.templateFuncs()

	render := func(text string, target *cobra.Command) error {
		tmpl, err := template.New("help").Funcs(funcs).Parse(text)
		if err != nil {
			return fmt.Errorf("parse help template: %w", err)
		}
		return tmpl.Execute(target.OutOrStdout(), target)
	}

	cmd.SetUsageFunc(func(target *cobra.Command) error {
		return render(usageTemplate, target)
	})
	cmd.SetHelpFunc(func(target *cobra.Command, _ []string) {
		if err := render(h.helpTemplate(), target); err != nil {
			target.PrintErrln(err)
		}
	})
}

// rpad pads s with spaces on the right to the given width.
func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// trimTrailing strips trailing whitespace from every line of s.
func trimTrailing(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
