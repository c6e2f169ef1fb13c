package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// spaceLetters renders a word as spaced upper-case tiles.
func spaceLetters(word string) string {
	runes := []rune(strings.ToUpper(word))
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

func truncateLine(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func modalWidth(width int) int {
	return maxInt(40, minInt(width-4, 72))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
