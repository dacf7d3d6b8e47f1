package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"notediff.znkr.io/diff"
)

func TestUnified(t *testing.T) {
	res := diff.Compute("a\nb\nc\n", "a\nx\nc\n")
	got := Unified(res, NoColor())

	want := strings.Join([]string{
		"1 1   a",
		"2   - b",
		"  2 + x",
		"3 3   c",
		"+1 -1",
		"",
	}, "\n")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Unified output is different (-want, +got):\n%s", d)
	}
}

func TestUnifiedGapMarker(t *testing.T) {
	res := diff.Compute(
		"1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n",
		"1\n2\n3\n4\n5\n6\n7\n8\n9\nX\n",
	)
	got := Unified(res, NoColor())

	// Context lines 1-6 are collapsed away, the output starts with a
	// separator row.
	if !strings.HasPrefix(got, strings.Repeat(" ", 8)+"···\n") {
		t.Errorf("Unified output doesn't start with a separator row:\n%s", got)
	}
	for _, want := range []string{" 7  7   7", "10    - 10", "   10 + X"} {
		if !strings.Contains(got, want) {
			t.Errorf("Unified output is missing %q:\n%s", want, got)
		}
	}
}

func TestUnifiedIdentical(t *testing.T) {
	res := diff.Compute("a\nb\n", "a\nb\n")
	if got := Unified(res, NoColor()); got != "" {
		t.Errorf("Unified output for identical documents = %q, want empty", got)
	}
}

func TestSideBySide(t *testing.T) {
	res := diff.Compute("a\nb\nc\n", "a\nx\nc\n")
	got := SideBySide(res, NoColor(), Width(40))

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("SideBySide produced %d lines, want 4:\n%s", len(lines), got)
	}

	// The replaced line shares a row: old content left, new content right.
	if !strings.Contains(lines[1], "b") || !strings.Contains(lines[1], "x") {
		t.Errorf("replacement not zipped into one row: %q", lines[1])
	}
	for i, line := range lines[:3] {
		if !strings.Contains(line, "│") {
			t.Errorf("line %d is missing the column separator: %q", i, line)
		}
	}
	if lines[3] != "+1 -1" {
		t.Errorf("stats line = %q, want %q", lines[3], "+1 -1")
	}
}

func TestSideBySideBlankCells(t *testing.T) {
	res := diff.Compute("a\n", "a\nb\n", diff.Full())
	got := SideBySide(res, NoColor(), Width(40))

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("SideBySide produced %d lines, want 3:\n%s", len(lines), got)
	}
	// The added line has no old-side counterpart, its left cell is blank.
	left := strings.SplitN(lines[1], "│", 2)[0]
	if strings.TrimSpace(left) != "" {
		t.Errorf("left cell of a pure insertion = %q, want blank", left)
	}
	if !strings.Contains(lines[1], "b") {
		t.Errorf("right cell of a pure insertion is missing the content: %q", lines[1])
	}
}

func TestHTML(t *testing.T) {
	res := diff.Compute("a\nb\nc\n", "a\nx\nc\n")
	b, err := HTML(res, "old.md", "new.md")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	got := string(b)

	for _, want := range []string{
		"old.md",
		"new.md",
		"+1",
		"-1",
		`<tr class="rem">`,
		`<tr class="add">`,
		`<tr class="ctx">`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML output is missing %q", want)
		}
	}
}

func TestHTMLEscapesContent(t *testing.T) {
	res := diff.Compute("", "<script>alert(1)</script>\n")
	b, err := HTML(res, "old", "new")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(string(b), "<script>alert") {
		t.Errorf("HTML output contains unescaped content:\n%s", b)
	}
}

func TestHTMLMarkedLine(t *testing.T) {
	res := diff.Compute("", "{: id=\"abc\"}\n")
	b, err := HTML(res, "old", "new")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(string(b), "marked") {
		t.Errorf("HTML output doesn't flag the marked line:\n%s", b)
	}
}

func TestHighlighterPassthrough(t *testing.T) {
	hl := newHighlighter("", "")
	if got := hl.line("plain text"); got != "plain text" {
		t.Errorf("highlighter without lexer changed the line: %q", got)
	}
}

func TestPairRows(t *testing.T) {
	records := diff.Compute("a\nb\nc\n", "a\nx\ny\nc\n", diff.Full()).Records
	// removed b, added x, added y between the two context lines

	rows := pairRows(records)
	if len(rows) != 4 {
		t.Fatalf("pairRows produced %d rows, want 4", len(rows))
	}
	if rows[1].left == nil || rows[1].left.Content != "b" || rows[1].right == nil || rows[1].right.Content != "x" {
		t.Errorf("row 1 = %+v, want b paired with x", rows[1])
	}
	if rows[2].left != nil || rows[2].right == nil || rows[2].right.Content != "y" {
		t.Errorf("row 2 = %+v, want blank left and y right", rows[2])
	}
}
