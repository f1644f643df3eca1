package highlight

import (
	"strings"

	"github.com/matcha-hdl/verifmt/pkg/verilog"
)

// LineSpans pairs a source line with its classified spans.
type LineSpans struct {
	Line  string
	Spans []verilog.Span
}

// Document classifies every line of a document in order, threading the
// block comment state between lines. An unterminated block comment colors
// the remainder of the document.
func Document(text string, rules []Rule) []LineSpans {
	lines := strings.Split(text, "\n")
	out := make([]LineSpans, 0, len(lines))

	inComment := false
	for _, line := range lines {
		spans, next := ClassifyLine(line, inComment, rules)
		out = append(out, LineSpans{Line: line, Spans: spans})
		inComment = next
	}
	return out
}
