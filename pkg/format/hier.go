package format

import (
	"strings"

	"github.com/matcha-hdl/verifmt/pkg/config"
	"github.com/matcha-hdl/verifmt/pkg/verilog"
)

// hierarchical is the tab-based, module-aware engine.
//
// Per line: blank lines emit one indent unit inside a module; module
// headers and endmodule are emitted verbatim at column zero; unindent
// and special keywords decrement before the line renders; the indent trigger
// check runs after, so an opening keyword renders at the outer level.
// Module bodies get one extra unit on top of the nesting level.
//
// The indent trigger is substring containment, not word-boundary matching.
// An identifier containing "begin" therefore triggers an indent. That
// looseness is part of this mode's contract and differs from the flat
// mode's whole-word matching.
func hierarchical(text string, cfg config.FormatterConfig) string {
	lines := strings.Split(text, "\n")
	formatted := make([]string, 0, len(lines))

	level := 0
	inModule := false
	unit := cfg.IndentUnit()

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if inModule {
				formatted = append(formatted, unit)
			} else {
				formatted = append(formatted, "")
			}
			continue
		}

		code, comment := splitLineComment(line)
		stripped := strings.TrimSpace(code)

		if strings.HasPrefix(stripped, verilog.ModuleKeyword) {
			inModule = true
			formatted = append(formatted, stripped)
			continue
		}
		if stripped == verilog.EndModuleKeyword {
			// endmodule is never indented.
			inModule = false
			formatted = append(formatted, stripped)
			continue
		}

		if hasAnyPrefix(stripped, cfg.UnindentKeywords) && level > 0 {
			level--
		}
		// Special keywords, else by default, drop back to the level of
		// their opener without closing a block.
		if hasAnyPrefix(stripped, cfg.SpecialKeywords) && level > 0 {
			level--
		}

		indent := strings.Repeat(unit, level)
		if inModule && !strings.HasPrefix(stripped, verilog.EndModuleKeyword) {
			indent = unit + indent
		}

		formattedLine := indent + stripped

		if comment != "" {
			if inModule {
				// Align trailing comments with one unit inside modules.
				formattedLine = strings.TrimRight(formattedLine, " \t") + unit + strings.TrimSpace(comment)
			} else {
				// Outside modules comments stay flush against the code.
				formattedLine = stripped + strings.TrimSpace(comment)
			}
		}

		formatted = append(formatted, formattedLine)

		if containsAny(stripped, cfg.IndentKeywords) {
			level++
		}
	}

	return strings.Join(formatted, "\n")
}

// splitLineComment splits a line at the first // marker into code and
// comment parts. The comment part keeps its marker.
func splitLineComment(line string) (code, comment string) {
	idx := strings.Index(line, verilog.LineCommentMarker)
	if idx < 0 {
		return line, ""
	}
	return line[:idx], line[idx:]
}

// hasAnyPrefix reports whether s starts with any of the keywords.
func hasAnyPrefix(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.HasPrefix(s, kw) {
			return true
		}
	}
	return false
}

// containsAny reports whether s contains any keyword as a plain substring.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
