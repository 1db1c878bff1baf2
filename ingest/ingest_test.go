package ingest

import (
	"strings"
	"testing"
)

func TestSplitKeepsLineBreakStyle(t *testing.T) {
	input := "一行目\r\n\n  \r\n最後"
	lines := Split(input)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	wantBreaks := []string{"\r\n", "\n", "\r\n", ""}
	for i, l := range lines {
		if l.Break != wantBreaks[i] {
			t.Errorf("line %d: break %q, want %q", i+1, l.Break, wantBreaks[i])
		}
		if l.Number != i+1 {
			t.Errorf("line %d numbered %d", i+1, l.Number)
		}
	}
	if lines[0].Text != "一行目" {
		t.Fatalf("unexpected first line %q", lines[0].Text)
	}
	if !lines[1].Blank() || !lines[2].Blank() || lines[3].Blank() {
		t.Fatal("blank detection mismatch")
	}

	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	if got := Join(lines, texts); got != input {
		t.Fatalf("Join round trip: got %q want %q", got, input)
	}
}

func TestSplitEmptyInput(t *testing.T) {
	lines := Split("")
	if len(lines) != 1 || lines[0].Text != "" || lines[0].Break != "" {
		t.Fatalf("unexpected lines for empty input: %#v", lines)
	}
}

func TestJoinPreservesLineCountWithMissingTexts(t *testing.T) {
	lines := Split("a\nb\nc\n")
	got := Join(lines, []string{"x"})
	if strings.Count(got, "\n") != 3 {
		t.Fatalf("expected 3 breaks, got %q", got)
	}
	if got != "x\n\n\n" {
		t.Fatalf("unexpected join %q", got)
	}
}

func TestIdeographicSpaceLineIsBlank(t *testing.T) {
	if !(Line{Text: "　 \t"}).Blank() {
		t.Fatal("expected ideographic space line to be blank")
	}
}

func TestNewRequestAssignsID(t *testing.T) {
	a := NewRequest("x")
	b := NewRequest("x")
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected unique request IDs, got %q and %q", a.ID, b.ID)
	}
	if len(a.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(a.Lines))
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("expected creation time")
	}
}
