package reporter

import (
	"fmt"
	"strings"
	"testing"
)

func TestGenerateDiffNoChanges(t *testing.T) {
	t.Parallel()

	content := []byte("module m;\nendmodule\n")
	if d := GenerateDiff("a.v", content, content); d != nil {
		t.Fatalf("expected nil diff for identical content, got %+v", d)
	}
	if d := GenerateDiff("a.v", nil, nil); d != nil {
		t.Fatalf("expected nil diff for empty content, got %+v", d)
	}
}

func TestGenerateDiffSingleChange(t *testing.T) {
	t.Parallel()

	original := []byte("module m;\nx;\nendmodule\n")
	formatted := []byte("module m;\n\tx;\nendmodule\n")

	d := GenerateDiff("a.v", original, formatted)
	if !d.HasChanges() {
		t.Fatal("expected changes")
	}
	if d.Additions != 1 || d.Deletions != 1 {
		t.Fatalf("expected 1 addition and 1 deletion, got +%d -%d", d.Additions, d.Deletions)
	}
	if len(d.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(d.Hunks))
	}

	hunk := d.Hunks[0]
	if hunk.OriginalStart != 1 || hunk.OriginalCount != 3 {
		t.Errorf("original range: got -%d,%d", hunk.OriginalStart, hunk.OriginalCount)
	}
	if hunk.ModifiedStart != 1 || hunk.ModifiedCount != 3 {
		t.Errorf("modified range: got +%d,%d", hunk.ModifiedStart, hunk.ModifiedCount)
	}

	want := "--- a/a.v\n" +
		"+++ b/a.v\n" +
		"@@ -1,3 +1,3 @@\n" +
		" module m;\n" +
		"-x;\n" +
		"+\tx;\n" +
		" endmodule\n"
	if got := d.String(); got != want {
		t.Errorf("diff output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateDiffDistantChangesSplitHunks(t *testing.T) {
	t.Parallel()

	var orig, mod strings.Builder
	for i := 1; i <= 20; i++ {
		line := fmt.Sprintf("line%d", i)
		orig.WriteString(line + "\n")
		if i == 2 || i == 15 {
			mod.WriteString(line + " changed\n")
		} else {
			mod.WriteString(line + "\n")
		}
	}

	d := GenerateDiff("a.v", []byte(orig.String()), []byte(mod.String()))
	if d == nil {
		t.Fatal("expected a diff")
	}
	if len(d.Hunks) != 2 {
		t.Fatalf("expected 2 hunks for distant changes, got %d", len(d.Hunks))
	}
	if d.Additions != 2 || d.Deletions != 2 {
		t.Errorf("expected +2 -2, got +%d -%d", d.Additions, d.Deletions)
	}
}

func TestGenerateDiffAdjacentChangesMerge(t *testing.T) {
	t.Parallel()

	original := []byte("a\nb\nc\nd\ne\n")
	formatted := []byte("a\nB\nc\nD\ne\n")

	d := GenerateDiff("a.v", original, formatted)
	if d == nil {
		t.Fatal("expected a diff")
	}
	// The two changes are one context line apart, well inside the merge
	// window, so they share a hunk.
	if len(d.Hunks) != 1 {
		t.Fatalf("expected 1 merged hunk, got %d", len(d.Hunks))
	}
}

func TestDiffStringNil(t *testing.T) {
	t.Parallel()

	var d *Diff
	if got := d.String(); got != "" {
		t.Errorf("nil diff should render empty, got %q", got)
	}
	if d.HasChanges() {
		t.Error("nil diff should report no changes")
	}
}
