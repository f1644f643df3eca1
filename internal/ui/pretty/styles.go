// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/matcha-hdl/verifmt/pkg/verilog"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// File status
	FilePath Style
	Success  Style
	Failure  Style
	Changed  Style
	Skipped  Style
	Error    Style

	// Diff styles
	DiffHeader  Style
	DiffHunk    Style
	DiffAdd     Style
	DiffRemove  Style
	DiffContext Style

	// Summary styles
	SummaryTitle Style
	SummaryValue Style

	// Misc
	Dim  Style
	Bold Style

	// tokens maps token categories to their display styles, built from
	// the configured theme.
	tokens map[verilog.TokenCategory]Style
}

// Style aliases lipgloss.Style so callers need not import lipgloss.
type Style = lipgloss.Style

// NewStyles creates a new Styles with the given color mode and theme. The
// theme maps token category names to hex colors; unknown or missing
// categories render unstyled.
func NewStyles(colorEnabled bool, theme map[string]string) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}

	s := &Styles{
		FilePath: lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Changed:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Skipped:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		DiffContext: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),

		tokens: make(map[verilog.TokenCategory]Style),
	}

	for _, cat := range verilog.Categories() {
		hex, ok := theme[cat.String()]
		if !ok {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		if cat == verilog.CatKeyword {
			style = style.Bold(true)
		}
		s.tokens[cat] = style
	}

	return s
}

// newNoColorStyles creates styles that pass text through unmodified.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FilePath:     plain,
		Success:      plain,
		Failure:      plain,
		Changed:      plain,
		Skipped:      plain,
		Error:        plain,
		DiffHeader:   plain,
		DiffHunk:     plain,
		DiffAdd:      plain,
		DiffRemove:   plain,
		DiffContext:  plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Dim:          plain,
		Bold:         plain,
		tokens:       make(map[verilog.TokenCategory]Style),
	}
}

// Token returns the style for a token category.
func (s *Styles) Token(cat verilog.TokenCategory) Style {
	if style, ok := s.tokens[cat]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
