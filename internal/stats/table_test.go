package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"#", "Scrambled", "Word"}
	rows := [][]string{
		{"1", "tac", "cat"},
		{"10", "naïev", "naïve"},
	}
	rightAlign := map[int]bool{0: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != " #  Scrambled  Word" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != " 1  tac        cat" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "10  naïev      naïve" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
