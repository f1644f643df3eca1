package verilog

// Comment markers.
const (
	LineCommentMarker = "//"
	BlockCommentStart = "/*"
	BlockCommentEnd   = "*/"
	ModuleKeyword     = "module"
	EndModuleKeyword  = "endmodule"
)

// Keywords are the general language keywords the highlighter paints bold.
func Keywords() []string {
	return []string{
		"module", "endmodule", "timescale",
		"begin", "end", "if", "else",
		"case", "endcase", "default",
		"assign", "always", "initial",
		"function", "endfunction",
		"task", "endtask",
		"parameter", "localparam",
	}
}

// PortKeywords are the port direction keywords.
func PortKeywords() []string {
	return []string{"input", "output", "inout"}
}

// TypeKeywords are the data type keywords.
func TypeKeywords() []string {
	return []string{"wire", "reg", "integer", "real"}
}

// SpecialKeywords are event and sensitivity-list keywords.
func SpecialKeywords() []string {
	return []string{"posedge", "negedge", "or"}
}

// Operators are the operator patterns, as regular expressions, in paint order.
// Order matters: single-character forms precede their two-character
// supersets, and a later match repaints the same offsets.
func Operators() []string {
	return []string{
		"=", "==", "!=", "<=", ">=",
		"&&", `\|\|`,
		`\+`, "-", `\*`, "/",
		`\^`, "&", `\|`, "~",
		"<<", ">>",
	}
}

// NumberPatterns are the numeric literal patterns, as regular expressions.
func NumberPatterns() []string {
	return []string{
		`\b\d+'[bB][01_]+\b`,         // sized binary: 4'b1010
		`\b\d+'[hH][0-9a-fA-F_]+\b`,  // sized hex: 8'hAB
		`\b\d+'[dD][0-9_]+\b`,        // sized decimal: 10'd42
		`\b\d+\b`,                    // bare decimal
		`\b[0-9]+\.[0-9]+\b`,         // floating point
	}
}

// HierIndentKeywords are the block-open keywords of the hierarchical
// formatter mode. Matching is substring containment, by contract.
func HierIndentKeywords() []string {
	return []string{"begin"}
}

// HierUnindentKeywords are the block-close keywords of the hierarchical
// formatter mode. Matching is line-prefix, by contract.
func HierUnindentKeywords() []string {
	return []string{"end", "endcase", "endfunction", "endtask"}
}

// FlatIndentKeywords are the indent triggers of the flat formatter mode.
// Matching is whole-word. Note that if and else both trigger an indent,
// so an if without begin over-indents until a matching close keyword.
func FlatIndentKeywords() []string {
	return []string{"module", "begin", "case", "function", "task", "generate", "if", "else"}
}

// FlatUnindentKeywords are the unindent triggers of the flat formatter mode.
func FlatUnindentKeywords() []string {
	return []string{"end", "endmodule", "endcase", "endfunction", "endtask", "endgenerate"}
}
