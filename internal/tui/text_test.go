package tui

import "testing"

func TestSpaceLetters(t *testing.T) {
	cases := map[string]string{
		"":     "",
		"tac":  "T A C",
		"éte":  "É T E",
		"Bird": "B I R D",
	}
	for in, want := range cases {
		if got := spaceLetters(in); got != want {
			t.Fatalf("spaceLetters(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("Skipped: kaleidoscope", 12); got != "Skipped: ..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncateLine("short", 10); got != "short" {
		t.Fatalf("expected untouched line, got %q", got)
	}
	if got := truncateLine("abcdef", 2); got != "ab" {
		t.Fatalf("expected hard cut, got %q", got)
	}
	if got := truncateLine("abcdef", 0); got != "abcdef" {
		t.Fatalf("expected untouched line for zero width, got %q", got)
	}
}

func TestModalWidthBounds(t *testing.T) {
	if got := modalWidth(20); got != 40 {
		t.Fatalf("expected minimum width 40, got %d", got)
	}
	if got := modalWidth(60); got != 56 {
		t.Fatalf("expected width 56, got %d", got)
	}
	if got := modalWidth(200); got != 72 {
		t.Fatalf("expected maximum width 72, got %d", got)
	}
}
