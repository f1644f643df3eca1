// Package highlight classifies Verilog source lines into display spans.
//
// The classifier is deliberately lexical: an ordered table of regular
// expression rules painted over each line, with block comment tracking as
// the only state carried between lines. It is not a parser and tolerates
// arbitrarily malformed input.
package highlight

import (
	"github.com/matcha-hdl/verifmt/pkg/verilog"
)

// ClassifyLine classifies one line of source.
//
// wasInComment is the carried block comment bit from the previous line;
// the returned bool is the bit to pass for the next line. Callers must
// invoke ClassifyLine in document order for block comments to track
// correctly; for an isolated line, pass false.
//
// Painting follows the rule table's order. Block comment regions are laid
// down first; a rule match whose start offset falls inside one is skipped.
// Otherwise the match paints its full range, overwriting any earlier
// rule's paint at the same offsets ("last rule wins on overlap").
func ClassifyLine(line string, wasInComment bool, rules []Rule) ([]verilog.Span, bool) {
	if line == "" {
		// State still threads through empty lines.
		_, next := ScanBlockComments(line, wasInComment)
		return nil, next
	}

	paint := make([]verilog.TokenCategory, len(line))

	commentSpans, nowInComment := ScanBlockComments(line, wasInComment)
	for _, s := range commentSpans {
		for i := s.Start; i < s.End; i++ {
			paint[i] = verilog.CatComment
		}
	}

	for _, rule := range rules {
		matches := rule.Pattern.FindAllStringSubmatchIndex(line, -1)
		for _, m := range matches {
			start, end := m[0], m[1]
			if rule.Group > 0 && 2*rule.Group+1 < len(m) && m[2*rule.Group] >= 0 {
				start, end = m[2*rule.Group], m[2*rule.Group+1]
			}
			if start >= end {
				continue
			}
			// Matches beginning inside a block comment are suppressed.
			if paint[start] == verilog.CatComment {
				continue
			}
			for i := start; i < end; i++ {
				paint[i] = rule.Category
			}
		}
	}

	return coalesce(paint), nowInComment
}

// coalesce folds the per-byte paint buffer into contiguous spans,
// dropping unclassified regions.
func coalesce(paint []verilog.TokenCategory) []verilog.Span {
	var spans []verilog.Span
	i := 0
	for i < len(paint) {
		cat := paint[i]
		j := i + 1
		for j < len(paint) && paint[j] == cat {
			j++
		}
		if cat != verilog.CatNone {
			spans = append(spans, verilog.Span{Start: i, End: j, Category: cat})
		}
		i = j
	}
	return spans
}
