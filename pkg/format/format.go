// Package format reindents Verilog source text.
//
// Two engine modes exist with intentionally different behavior. The
// hierarchical mode tracks begin/end nesting with module-aware extra
// indentation and tab units. The flat mode uses a broader keyword set
// (including if and else) with whole-word matching and space units. Both
// are single-pass, pure, and total: malformed input degrades to
// best-effort output and never produces an error.
package format

import (
	"github.com/matcha-hdl/verifmt/pkg/config"
)

// Document reformats a whole document according to cfg.
//
// The mode-selected engine runs first; the module port reflow post-pass
// then rewrites any module header port lists found in its output, one port
// per line. Formatting never fails: the only externally visible "failure"
// is the reflow pass silently not matching.
func Document(text string, cfg config.FormatterConfig) string {
	var out string
	switch cfg.Mode {
	case config.ModeFlat:
		out = flat(text, cfg)
	default:
		out = hierarchical(text, cfg)
	}

	if cfg.ExpandModulePorts {
		out = reflowModulePorts(out, cfg.IndentUnit())
	}
	return out
}
