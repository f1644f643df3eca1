// Package config defines core configuration types for verifmt.
// These types are pure data structures with no dependency on the loader.
package config

import (
	"slices"
	"strings"

	"github.com/matcha-hdl/verifmt/pkg/verilog"
)

// Mode selects the indentation engine.
type Mode string

const (
	// ModeHierarchical is the tab-based, module-aware engine.
	ModeHierarchical Mode = "hierarchical"

	// ModeFlat is the space-based engine with whole-word keyword matching.
	ModeFlat Mode = "flat"
)

// IsValid returns true for a known engine mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeHierarchical, ModeFlat:
		return true
	default:
		return false
	}
}

// OperatorSpacing describes whitespace requirements around one operator.
type OperatorSpacing struct {
	Before bool `yaml:"before"`
	After  bool `yaml:"after"`
}

// FormatterConfig controls the indentation engine. The zero value is not
// useful; start from DefaultHierarchical or DefaultFlat.
type FormatterConfig struct {
	// Mode selects the engine: "hierarchical" or "flat".
	Mode Mode `yaml:"mode"`

	// IndentSize is the number of spaces per level when UseTabs is false.
	IndentSize int `yaml:"indent_size"`

	// UseTabs renders each level as one tab instead of IndentSize spaces.
	UseTabs bool `yaml:"use_tabs"`

	// IndentKeywords increase the nesting level. The hierarchical mode
	// tests substring containment; the flat mode tests whole words.
	IndentKeywords []string `yaml:"indent_keywords"`

	// UnindentKeywords decrease the nesting level for the current line.
	UnindentKeywords []string `yaml:"unindent_keywords"`

	// SpecialKeywords decrement before rendering without closing a block,
	// like else. Only the hierarchical engine consults them.
	SpecialKeywords []string `yaml:"special_keywords"`

	// ExpandModulePorts enables the module header reflow post-pass.
	ExpandModulePorts bool `yaml:"expand_module_ports"`

	// OperatorSpacing declares spacing rules per operator. The table is
	// part of the configuration surface and round-trips through config
	// files; the engines do not apply it.
	OperatorSpacing map[string]OperatorSpacing `yaml:"operator_spacing,omitempty"`
}

// IndentUnit returns the string for one nesting level.
func (c FormatterConfig) IndentUnit() string {
	if c.UseTabs {
		return "\t"
	}
	size := c.IndentSize
	if size <= 0 {
		size = 2
	}
	return strings.Repeat(" ", size)
}

// DefaultHierarchical returns the hierarchical mode defaults: tab units,
// begin as the only indent trigger, end-class keywords as unindent triggers.
func DefaultHierarchical() FormatterConfig {
	return FormatterConfig{
		Mode:              ModeHierarchical,
		IndentSize:        4,
		UseTabs:           true,
		IndentKeywords:    verilog.HierIndentKeywords(),
		UnindentKeywords:  verilog.HierUnindentKeywords(),
		SpecialKeywords:   []string{"else"},
		ExpandModulePorts: true,
		OperatorSpacing:   DefaultOperatorSpacing(),
	}
}

// DefaultFlat returns the flat mode defaults: two-space units and the
// broad trigger set including if and else.
func DefaultFlat() FormatterConfig {
	return FormatterConfig{
		Mode:              ModeFlat,
		IndentSize:        2,
		UseTabs:           false,
		IndentKeywords:    verilog.FlatIndentKeywords(),
		UnindentKeywords:  verilog.FlatUnindentKeywords(),
		SpecialKeywords:   []string{"else"},
		ExpandModulePorts: true,
		OperatorSpacing:   DefaultOperatorSpacing(),
	}
}

// DefaultOperatorSpacing returns the stock operator spacing table.
func DefaultOperatorSpacing() map[string]OperatorSpacing {
	both := OperatorSpacing{Before: true, After: true}
	ops := []string{
		"<=", ">=", "==", "!=", "&&", "||",
		"&", "|", "^", "+", "-", "*", "/", "=", "<", ">",
	}
	table := make(map[string]OperatorSpacing, len(ops))
	for _, op := range ops {
		table[op] = both
	}
	return table
}

// HighlightConfig controls the lexical classifier: the keyword vocabulary
// that becomes the rule table, and the display theme passed through to
// rendering collaborators.
type HighlightConfig struct {
	// Theme maps token category names to hex colors. The classifier never
	// interprets colors; they flow through to the renderer opaquely.
	Theme map[string]string `yaml:"theme,omitempty"`

	Keywords        []string `yaml:"keywords,omitempty"`
	PortKeywords    []string `yaml:"port_keywords,omitempty"`
	TypeKeywords    []string `yaml:"type_keywords,omitempty"`
	SpecialKeywords []string `yaml:"special_keywords,omitempty"`

	// Operators and NumberPatterns are regular expressions, painted in
	// list order.
	Operators      []string `yaml:"operators,omitempty"`
	NumberPatterns []string `yaml:"number_patterns,omitempty"`
}

// DefaultHighlight returns the stock vocabulary and the editor dark theme.
func DefaultHighlight() HighlightConfig {
	return HighlightConfig{
		Theme:           DefaultTheme(),
		Keywords:        verilog.Keywords(),
		PortKeywords:    verilog.PortKeywords(),
		TypeKeywords:    verilog.TypeKeywords(),
		SpecialKeywords: verilog.SpecialKeywords(),
		Operators:       verilog.Operators(),
		NumberPatterns:  verilog.NumberPatterns(),
	}
}

// DefaultTheme returns the default dark theme, keyed by category name.
func DefaultTheme() map[string]string {
	return map[string]string{
		"keyword":  "#569CD6",
		"port":     "#569CD6",
		"type":     "#4EC9B0",
		"number":   "#B5CEA8",
		"operator": "#D4D4D4",
		"bracket":  "#D4D4D4",
		"comment":  "#608B4E",
		"string":   "#CE9178",
		"special":  "#C586C0",
	}
}

// BackupsConfig controls backup behavior when writing formatted files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Config is the root configuration structure for verifmt.
type Config struct {
	// Formatter controls the indentation engine.
	Formatter FormatterConfig `yaml:"formatter"`

	// Highlight controls the lexical classifier.
	Highlight HighlightConfig `yaml:"highlight"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// Backups configures backup behavior for in-place formatting.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Write applies formatting in place instead of printing.
	Write bool `yaml:"-"`

	// Check exits nonzero when any file would change, without writing.
	Check bool `yaml:"-"`

	// Jobs is the number of parallel workers (0 = auto).
	Jobs int `yaml:"-"`

	// NoBackups disables backup creation when writing.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults: hierarchical mode,
// stock vocabulary, sidecar backups enabled.
func NewConfig() *Config {
	return &Config{
		Formatter: DefaultHierarchical(),
		Highlight: DefaultHighlight(),
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
	}
}

func modeDefaults(mode Mode) FormatterConfig {
	if mode == ModeFlat {
		return DefaultFlat()
	}
	return DefaultHierarchical()
}

// ForMode returns the config switched to the named mode. Fields still at
// the current mode's defaults follow the new mode; customized fields and
// the reflow and spacing settings carry over unchanged. Unknown modes
// resolve to hierarchical.
func (c FormatterConfig) ForMode(mode Mode) FormatterConfig {
	if mode == c.Mode {
		return c
	}

	old := modeDefaults(c.Mode)
	next := modeDefaults(mode)

	out := c
	out.Mode = next.Mode
	if c.IndentSize == old.IndentSize {
		out.IndentSize = next.IndentSize
	}
	if c.UseTabs == old.UseTabs {
		out.UseTabs = next.UseTabs
	}
	if slices.Equal(c.IndentKeywords, old.IndentKeywords) {
		out.IndentKeywords = next.IndentKeywords
	}
	if slices.Equal(c.UnindentKeywords, old.UnindentKeywords) {
		out.UnindentKeywords = next.UnindentKeywords
	}
	if slices.Equal(c.SpecialKeywords, old.SpecialKeywords) {
		out.SpecialKeywords = next.SpecialKeywords
	}
	return out
}
