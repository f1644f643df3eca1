package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcha-hdl/verifmt/pkg/config"
	"github.com/matcha-hdl/verifmt/pkg/highlight"
	"github.com/matcha-hdl/verifmt/pkg/verilog"
)

func defaultRules() []highlight.Rule {
	return highlight.DefaultRules(config.DefaultHighlight())
}

// categoryAt returns the category covering offset i, or CatNone.
func categoryAt(spans []verilog.Span, i int) verilog.TokenCategory {
	for _, s := range spans {
		if i >= s.Start && i < s.End {
			return s.Category
		}
	}
	return verilog.CatNone
}

func TestClassifyLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		wasIn     bool
		wantSpans []verilog.Span
		wantState bool
	}{
		{
			name:      "whitespace only line has no spans",
			line:      "   \t",
			wantSpans: nil,
		},
		{
			name: "endmodule is one keyword not end plus module",
			line: "endmodule",
			wantSpans: []verilog.Span{
				{Start: 0, End: 9, Category: verilog.CatKeyword},
			},
		},
		{
			name: "type keyword",
			line: "wire x;",
			wantSpans: []verilog.Span{
				{Start: 0, End: 4, Category: verilog.CatType},
			},
		},
		{
			name: "assignment with sized literal",
			line: "assign y = 4'b1010;",
			wantSpans: []verilog.Span{
				{Start: 0, End: 6, Category: verilog.CatKeyword},
				{Start: 9, End: 10, Category: verilog.CatOperator},
				{Start: 11, End: 18, Category: verilog.CatNumber},
			},
		},
		{
			name: "module declaration",
			line: "module m(a);",
			wantSpans: []verilog.Span{
				{Start: 0, End: 8, Category: verilog.CatKeyword},
				{Start: 8, End: 9, Category: verilog.CatBracket},
				{Start: 10, End: 11, Category: verilog.CatBracket},
			},
		},
		{
			name: "instance name pair before paren",
			line: "counter c1 (clk);",
			wantSpans: []verilog.Span{
				{Start: 0, End: 10, Category: verilog.CatKeyword},
				{Start: 11, End: 12, Category: verilog.CatBracket},
				{Start: 15, End: 16, Category: verilog.CatBracket},
			},
		},
		{
			name: "line comment repaints everything it covers",
			line: "assign x = 1; // assign one",
			wantSpans: []verilog.Span{
				{Start: 0, End: 6, Category: verilog.CatKeyword},
				{Start: 9, End: 10, Category: verilog.CatOperator},
				{Start: 11, End: 12, Category: verilog.CatNumber},
				{Start: 14, End: 27, Category: verilog.CatComment},
			},
		},
		{
			name:  "carried block comment suppresses matches inside it",
			line:  "end */ wire x;",
			wasIn: true,
			wantSpans: []verilog.Span{
				{Start: 0, End: 6, Category: verilog.CatComment},
				{Start: 7, End: 11, Category: verilog.CatType},
			},
		},
		{
			name:      "unterminated block comment carries state",
			line:      "wire x; /* open",
			wantState: true,
			wantSpans: []verilog.Span{
				{Start: 0, End: 4, Category: verilog.CatType},
				{Start: 8, End: 15, Category: verilog.CatComment},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spans, state := highlight.ClassifyLine(tt.line, tt.wasIn, defaultRules())
			assert.Equal(t, tt.wantSpans, spans)
			assert.Equal(t, tt.wantState, state)
		})
	}
}

func TestClassifyLineLastRuleWins(t *testing.T) {
	t.Parallel()

	// The line comment rule runs last, so a // inside a string literal
	// still repaints the tail as a comment. Rule order is the contract.
	spans, state := highlight.ClassifyLine(`x = "a//b";`, false, defaultRules())
	assert.False(t, state)

	assert.Equal(t, verilog.CatString, categoryAt(spans, 4))
	assert.Equal(t, verilog.CatString, categoryAt(spans, 5))
	assert.Equal(t, verilog.CatComment, categoryAt(spans, 6))
	assert.Equal(t, verilog.CatComment, categoryAt(spans, 10))
}

func TestClassifyLineStringLiteral(t *testing.T) {
	t.Parallel()

	spans, _ := highlight.ClassifyLine(`$display("done");`, false, defaultRules())

	start := len(`$display(`)
	for i := start; i < start+len(`"done"`); i++ {
		assert.Equal(t, verilog.CatString, categoryAt(spans, i), "offset %d", i)
	}
}

func TestDocumentBlockCommentContinuity(t *testing.T) {
	t.Parallel()

	text := "/* start\nmiddle\nend */ wire x;"
	out := highlight.Document(text, defaultRules())
	require.Len(t, out, 3)

	assert.Equal(t, []verilog.Span{
		{Start: 0, End: 8, Category: verilog.CatComment},
	}, out[0].Spans)

	assert.Equal(t, []verilog.Span{
		{Start: 0, End: 6, Category: verilog.CatComment},
	}, out[1].Spans)

	assert.Equal(t, []verilog.Span{
		{Start: 0, End: 6, Category: verilog.CatComment},
		{Start: 7, End: 11, Category: verilog.CatType},
	}, out[2].Spans)
}

func TestDocumentUnterminatedCommentColorsRemainder(t *testing.T) {
	t.Parallel()

	text := "/* open\nwire x;"
	out := highlight.Document(text, defaultRules())
	require.Len(t, out, 2)

	assert.Equal(t, []verilog.Span{
		{Start: 0, End: 7, Category: verilog.CatComment},
	}, out[0].Spans)
	assert.Equal(t, []verilog.Span{
		{Start: 0, End: 7, Category: verilog.CatComment},
	}, out[1].Spans)
}
