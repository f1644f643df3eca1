package highlight

import (
	"regexp"

	"github.com/matcha-hdl/verifmt/pkg/config"
	"github.com/matcha-hdl/verifmt/pkg/verilog"
)

// Rule maps a regular expression to a token category. Rules live in an
// ordered list; each rule paints all of its matches over the line, and a
// later rule repaints any offsets it shares with an earlier one.
type Rule struct {
	Pattern  *regexp.Regexp
	Category verilog.TokenCategory

	// Group, when positive, restricts painting to that capture group of
	// each match instead of the whole match.
	Group int
}

// DefaultRules builds the ordered rule table from the vocabulary in cfg.
// The order reproduces the editor's highlighter: brackets first, then
// module and instance names, keyword classes, operators, numbers, strings,
// and line comments last so they win over everything they overlap.
func DefaultRules(cfg config.HighlightConfig) []Rule {
	var rules []Rule

	// All bracket characters.
	rules = append(rules, Rule{
		Pattern:  regexp.MustCompile(`[\[\]{}()]`),
		Category: verilog.CatBracket,
	})

	// Module declarations and instance names. RE2 has no lookahead, so the
	// instance form captures the name pair and paints only the group.
	rules = append(rules, Rule{
		Pattern:  regexp.MustCompile(`module\s+\w+`),
		Category: verilog.CatKeyword,
	})
	rules = append(rules, Rule{
		Pattern:  regexp.MustCompile(`(\w+\s+\w+)\s*\(`),
		Category: verilog.CatKeyword,
		Group:    1,
	})

	for _, kw := range cfg.Keywords {
		rules = append(rules, wordRule(kw, verilog.CatKeyword))
	}
	for _, kw := range cfg.PortKeywords {
		rules = append(rules, wordRule(kw, verilog.CatPort))
	}
	for _, kw := range cfg.TypeKeywords {
		rules = append(rules, wordRule(kw, verilog.CatType))
	}
	for _, kw := range cfg.SpecialKeywords {
		rules = append(rules, wordRule(kw, verilog.CatSpecial))
	}

	for _, op := range cfg.Operators {
		rules = append(rules, Rule{
			Pattern:  regexp.MustCompile(op),
			Category: verilog.CatOperator,
		})
	}

	for _, pat := range cfg.NumberPatterns {
		rules = append(rules, Rule{
			Pattern:  regexp.MustCompile(pat),
			Category: verilog.CatNumber,
		})
	}

	// String literals.
	rules = append(rules, Rule{
		Pattern:  regexp.MustCompile(`"[^"\n]*"`),
		Category: verilog.CatString,
	})

	// Line comments override every earlier paint on the same offsets.
	rules = append(rules, Rule{
		Pattern:  regexp.MustCompile(`//[^\n]*`),
		Category: verilog.CatComment,
	})

	return rules
}

// wordRule builds a word-boundary anchored rule for a keyword, so that
// e.g. the end rule never matches the prefix of endmodule.
func wordRule(keyword string, cat verilog.TokenCategory) Rule {
	return Rule{
		Pattern:  regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`),
		Category: cat,
	}
}
