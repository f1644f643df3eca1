package highlight

import (
	"strings"

	"github.com/matcha-hdl/verifmt/pkg/verilog"
)

// ScanBlockComments finds /* */ comment regions on a single line.
//
// wasInComment carries the one bit of cross-line state: whether the previous
// line ended inside an unterminated block comment. When set, a comment is
// considered open from offset 0. The returned bool is the state to carry to
// the next line.
//
// A line may contain several complete block comments plus a trailing open
// one. This must run over a document in line order; it cannot be applied to
// lines independently.
func ScanBlockComments(line string, wasInComment bool) ([]verilog.Span, bool) {
	var spans []verilog.Span

	open := -1
	if wasInComment {
		open = 0
	} else {
		open = strings.Index(line, verilog.BlockCommentStart)
	}

	for open >= 0 {
		end := strings.Index(line[open:], verilog.BlockCommentEnd)
		if end < 0 {
			// Unterminated: the comment colors the rest of the line and
			// continues on the next one.
			spans = append(spans, verilog.Span{Start: open, End: len(line), Category: verilog.CatComment})
			return spans, true
		}
		closeEnd := open + end + len(verilog.BlockCommentEnd)
		spans = append(spans, verilog.Span{Start: open, End: closeEnd, Category: verilog.CatComment})

		next := strings.Index(line[closeEnd:], verilog.BlockCommentStart)
		if next < 0 {
			break
		}
		open = closeEnd + next
	}

	return spans, false
}
