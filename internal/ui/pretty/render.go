package pretty

import (
	"strings"

	"github.com/matcha-hdl/verifmt/pkg/verilog"
)

// RenderLine renders a source line with its classified spans styled. Spans
// are assumed sorted and non-overlapping; uncovered gaps render unstyled.
func (s *Styles) RenderLine(line string, spans []verilog.Span) string {
	if len(spans) == 0 {
		return line
	}

	var builder strings.Builder
	pos := 0
	for _, span := range spans {
		if span.Start >= len(line) {
			break
		}
		end := span.End
		if end > len(line) {
			end = len(line)
		}
		if span.Start > pos {
			builder.WriteString(line[pos:span.Start])
		}
		builder.WriteString(s.Token(span.Category).Render(line[span.Start:end]))
		pos = end
	}
	if pos < len(line) {
		builder.WriteString(line[pos:])
	}
	return builder.String()
}
