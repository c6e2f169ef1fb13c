package generator

import (
	"sort"
	"strings"
	"testing"
)

func sortedRunes(s string) string {
	runes := []rune(s)
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

func TestScrambleIsDistinctPermutation(t *testing.T) {
	gen := New(7)
	for _, word := range []string{"ab", "zoo", "tea", "kaleidoscope", "aab", "été"} {
		for i := 0; i < 50; i++ {
			got := gen.Scramble(word, DefaultShuffleAttempts)
			if strings.EqualFold(got, word) {
				t.Fatalf("scramble of %q equals the word", word)
			}
			if sortedRunes(got) != sortedRunes(word) {
				t.Fatalf("scramble %q is not a permutation of %q", got, word)
			}
		}
	}
}

func TestScrambleFallsBackToRotation(t *testing.T) {
	gen := New(1)
	got := gen.Scramble("ab", 0)
	if got != "ba" {
		t.Fatalf("expected rotation fallback %q, got %q", "ba", got)
	}
}

func TestScrambleLeavesUnscramblableWords(t *testing.T) {
	gen := New(1)
	if got := gen.Scramble("a", DefaultShuffleAttempts); got != "a" {
		t.Fatalf("expected single rune unchanged, got %q", got)
	}
	if got := gen.Scramble("aaa", 3); got != "aaa" {
		t.Fatalf("expected repeated rune word unchanged, got %q", got)
	}
}

func TestRotate(t *testing.T) {
	cases := map[string]string{
		"":      "",
		"a":     "a",
		"cat":   "atc",
		"aab":   "aba",
		"naïve": "aïven",
	}
	for in, want := range cases {
		if got := Rotate(in); got != want {
			t.Fatalf("Rotate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSeededGeneratorsAreDeterministic(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 20; i++ {
		if a.Pick(1000) != b.Pick(1000) {
			t.Fatalf("expected identical picks for identical seeds")
		}
	}
	if a.Scramble("elephant", DefaultShuffleAttempts) != b.Scramble("elephant", DefaultShuffleAttempts) {
		t.Fatalf("expected identical scrambles for identical seeds")
	}
}
