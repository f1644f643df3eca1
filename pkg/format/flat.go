package format

import (
	"strings"

	"github.com/matcha-hdl/verifmt/pkg/config"
)

// flat is the space-based engine. It has no module awareness: every line
// renders at level * indent-unit, with the level adjusted by a broader
// trigger set than the hierarchical mode.
//
// Keyword matching is whole-word, so identifiers containing a trigger do
// not fire. Each indent keyword present on a line bumps the level once:
// "if (x) begin" increments twice, which over-indents an if without a
// begin until a matching close keyword. That quirk is part of this mode's
// contract, not a defect to repair.
func flat(text string, cfg config.FormatterConfig) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	level := 0
	unit := cfg.IndentUnit()

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			out = append(out, "")
			continue
		}

		if startsWithWord(stripped, cfg.UnindentKeywords) && level > 0 {
			level--
		}

		out = append(out, strings.Repeat(unit, level)+stripped)

		for _, kw := range cfg.IndentKeywords {
			if containsWord(stripped, kw) {
				level++
			}
		}
	}

	return strings.Join(out, "\n")
}

// startsWithWord reports whether s begins with any keyword followed by a
// word boundary, so "end" matches "end" and "end else" but not "ending".
func startsWithWord(s string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.HasPrefix(s, kw) {
			continue
		}
		if len(s) == len(kw) || !isWordByte(s[len(kw)]) {
			return true
		}
	}
	return false
}

// containsWord reports whether s contains kw bounded by non-word bytes.
func containsWord(s, kw string) bool {
	for from := 0; ; {
		idx := strings.Index(s[from:], kw)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(kw)
		leftOK := start == 0 || !isWordByte(s[start-1])
		rightOK := end == len(s) || !isWordByte(s[end])
		if leftOK && rightOK {
			return true
		}
		from = start + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
