// Package verilog defines the shared lexical vocabulary for Verilog and
// SystemVerilog source: token categories, classified spans, keyword lists,
// and comment markers. It has no dependencies and is consumed by both the
// formatter and the highlighter.
package verilog

// TokenCategory classifies a span of Verilog source for display purposes.
type TokenCategory uint8

// Token categories cover the lexical classes the highlighter distinguishes.
const (
	// CatNone marks unclassified source text.
	CatNone TokenCategory = iota

	CatKeyword  // language keywords: module, begin, if, ...
	CatPort     // port directions: input, output, inout
	CatType     // data types: wire, reg, integer, real
	CatNumber   // sized and bare numeric literals
	CatOperator // arithmetic, logical, bitwise operators
	CatBracket  // [ ] { } ( )
	CatComment  // // line comments and /* */ block comments
	CatString   // "..." string literals
	CatSpecial  // posedge, negedge, or
)

// String returns the lowercase category name used in theme maps and JSON output.
func (c TokenCategory) String() string {
	switch c {
	case CatKeyword:
		return "keyword"
	case CatPort:
		return "port"
	case CatType:
		return "type"
	case CatNumber:
		return "number"
	case CatOperator:
		return "operator"
	case CatBracket:
		return "bracket"
	case CatComment:
		return "comment"
	case CatString:
		return "string"
	case CatSpecial:
		return "special"
	default:
		return "none"
	}
}

// Categories lists every displayable category, in a stable order.
func Categories() []TokenCategory {
	return []TokenCategory{
		CatKeyword, CatPort, CatType, CatNumber, CatOperator,
		CatBracket, CatComment, CatString, CatSpecial,
	}
}

// Span is a classified substring of a single source line.
// Offsets are byte indices into the line; End is exclusive.
type Span struct {
	Start    int
	End      int
	Category TokenCategory
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the source text covered by the span.
func (s Span) Text(line string) string {
	if s.Start < 0 || s.End > len(line) || s.Start > s.End {
		return ""
	}
	return line[s.Start:s.End]
}
