package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matcha-hdl/verifmt/pkg/config"
	"github.com/matcha-hdl/verifmt/pkg/format"
)

// hierCfg returns the hierarchical defaults with port reflow disabled, so
// engine behavior can be tested without the post-pass rewriting headers.
func hierCfg() config.FormatterConfig {
	cfg := config.DefaultHierarchical()
	cfg.ExpandModulePorts = false
	return cfg
}

func flatCfg() config.FormatterConfig {
	cfg := config.DefaultFlat()
	cfg.ExpandModulePorts = false
	return cfg
}

func TestHierarchical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "always block inside module",
			input: "module m;\nalways @(posedge clk) begin\nx <= 1;\nend\nendmodule",
			want:  "module m;\n\talways @(posedge clk) begin\n\t\tx <= 1;\n\tend\nendmodule",
		},
		{
			name:  "bare begin end inside module",
			input: "module m;\nbegin\nend\nendmodule",
			want:  "module m;\n\tbegin\n\tend\nendmodule",
		},
		{
			name:  "module header and endmodule stay at column zero",
			input: "  module m;\n  x <= 1;\n  endmodule",
			want:  "module m;\n\tx <= 1;\nendmodule",
		},
		{
			name:  "blank line inside module becomes one unit",
			input: "module m;\n\nendmodule",
			want:  "module m;\n\t\nendmodule",
		},
		{
			name:  "blank line outside module stays empty",
			input: "x;\n\ny;",
			want:  "x;\n\ny;",
		},
		{
			name:  "else drops back to the level of its if",
			input: "if (a) begin\nb;\nend\nelse begin\nc;\nend",
			want:  "if (a) begin\n\tb;\nend\nelse begin\n\tc;\nend",
		},
		{
			name:  "level never goes below zero",
			input: "end\nend\nx;",
			want:  "end\nend\nx;",
		},
		{
			name:  "nested begin blocks",
			input: "if (a) begin\nif (b) begin\nc;\nend\nend",
			want:  "if (a) begin\n\tif (b) begin\n\t\tc;\n\tend\nend",
		},
		{
			name: "substring begin trigger fires inside identifiers",
			// The hierarchical trigger is substring containment, so an
			// identifier containing "begin" indents the following line.
			input: "wire xbegins;\ny;",
			want:  "wire xbegins;\n\ty;",
		},
		{
			name:  "trailing comment inside module aligns with one unit",
			input: "module m;\nx <= 1; // set x\nendmodule",
			want:  "module m;\n\tx <= 1;\t// set x\nendmodule",
		},
		{
			name:  "trailing comment outside module stays flush",
			input: "x <= 1;   // set x",
			want:  "x <= 1;// set x",
		},
		{
			name:  "endcase closes a case block",
			input: "module m;\ncase (s) begin\n1: a;\nendcase\nendmodule",
			want:  "module m;\n\tcase (s) begin\n\t\t1: a;\n\tendcase\nendmodule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := format.Document(tt.input, hierCfg())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHierarchicalSpecialKeywords(t *testing.T) {
	t.Parallel()

	input := "always @(x) begin\nif (a) y = 1;\nelse y = 0;\nend"

	t.Run("default list drops else back", func(t *testing.T) {
		t.Parallel()

		got := format.Document(input, hierCfg())
		assert.Equal(t, "always @(x) begin\n\tif (a) y = 1;\nelse y = 0;\nend", got)
	})

	t.Run("custom list replaces else", func(t *testing.T) {
		t.Parallel()

		cfg := hierCfg()
		cfg.SpecialKeywords = []string{"otherwise"}

		got := format.Document(input, cfg)
		assert.Equal(t, "always @(x) begin\n\tif (a) y = 1;\n\telse y = 0;\nend", got)

		got = format.Document("always @(x) begin\notherwise y = 0;\nend", cfg)
		assert.Equal(t, "always @(x) begin\notherwise y = 0;\nend", got)
	})
}

func TestFlat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "module body indents with two spaces",
			input: "module m;\nwire x;\nendmodule",
			want:  "module m;\n  wire x;\nendmodule",
		},
		{
			name: "if with begin increments twice",
			// Both "if" and "begin" are triggers; a line carrying both bumps
			// the level twice, and the single "end" only closes one.
			input: "module m;\nif (x) begin\ny = 1;\nend\nendmodule",
			want:  "module m;\n  if (x) begin\n      y = 1;\n    end\n  endmodule",
		},
		{
			name:  "whole word matching ignores identifier substrings",
			input: "module m;\nwire ending;\nwire mybegin;\nendmodule",
			want:  "module m;\n  wire ending;\n  wire mybegin;\nendmodule",
		},
		{
			name:  "generate block",
			input: "generate\nassign y = x;\nendgenerate",
			want:  "generate\n  assign y = x;\nendgenerate",
		},
		{
			name:  "level never goes below zero",
			input: "end\nendmodule\nx;",
			want:  "end\nendmodule\nx;",
		},
		{
			name:  "blank lines stay empty",
			input: "module m;\n\nendmodule",
			want:  "module m;\n\nendmodule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := format.Document(tt.input, flatCfg())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReflowModulePorts(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultHierarchical()

	t.Run("single line header", func(t *testing.T) {
		t.Parallel()

		got := format.Document("module foo(a,b,c);\nendmodule", cfg)
		want := "module foo (\n\ta,\n\tb,\n\tc\n);\nendmodule"
		assert.Equal(t, want, got)
	})

	t.Run("multi line header is normalized", func(t *testing.T) {
		t.Parallel()

		got := format.Document("module m (\na, b,\nc\n);\nendmodule", cfg)
		want := "module m (\n\ta,\n\tb,\n\tc\n);\nendmodule"
		assert.Equal(t, want, got)
	})

	t.Run("each header reflows independently", func(t *testing.T) {
		t.Parallel()

		input := "module a(x);\nendmodule\nmodule b(y);\nendmodule"
		got := format.Document(input, cfg)
		want := "module a (\n\tx\n);\nendmodule\nmodule b (\n\ty\n);\nendmodule"
		assert.Equal(t, want, got)
	})

	t.Run("module without port list is untouched", func(t *testing.T) {
		t.Parallel()

		got := format.Document("module m;\nendmodule", cfg)
		assert.Equal(t, "module m;\nendmodule", got)
	})

	t.Run("disabled reflow keeps header inline", func(t *testing.T) {
		t.Parallel()

		got := format.Document("module foo(a,b);\nendmodule", hierCfg())
		assert.Equal(t, "module foo(a,b);\nendmodule", got)
	})
}

func TestDocumentIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"module foo(a,b,c);\nalways @(posedge clk) begin\nq <= d;\nend\nendmodule",
		"if (a) begin\nb;\nend\nelse begin\nc;\nend",
		"module m;\n\nwire x; // comment\nendmodule",
	}

	for _, cfg := range []config.FormatterConfig{config.DefaultHierarchical(), flatCfg()} {
		for _, input := range inputs {
			once := format.Document(input, cfg)
			twice := format.Document(once, cfg)
			assert.Equal(t, once, twice, "mode %s input %q", cfg.Mode, input)
		}
	}
}

func TestDocumentModeDispatch(t *testing.T) {
	t.Parallel()

	// Unknown modes fall back to the hierarchical engine.
	cfg := hierCfg()
	cfg.Mode = config.Mode("bogus")

	got := format.Document("module m;\nx;\nendmodule", cfg)
	assert.Equal(t, "module m;\n\tx;\nendmodule", got)
}
