// Package generator provides the random source for picking and scrambling words.
package generator

import (
	"math/rand"
	"strings"
	"time"
)

// DefaultShuffleAttempts bounds how often Scramble reshuffles before rotating.
const DefaultShuffleAttempts = 32

// Generator produces random picks and character permutations.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with seed, or with the current time when seed is 0.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniform index in [0, n).
func (g *Generator) Pick(n int) int {
	return g.rnd.Intn(n)
}

// Shuffle permutes runes in place.
func (g *Generator) Shuffle(runes []rune) {
	g.rnd.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
}

// Scramble returns a permutation of word that differs from it, ignoring case.
// After attempts failed shuffles it falls back to rotating the word left by
// one, which differs for any word with two or more distinct characters.
func (g *Generator) Scramble(word string, attempts int) string {
	runes := []rune(word)
	if len(runes) < 2 {
		return word
	}
	for i := 0; i < attempts; i++ {
		g.Shuffle(runes)
		if candidate := string(runes); !strings.EqualFold(candidate, word) {
			return candidate
		}
	}
	return Rotate(word)
}

// Rotate moves the first character of word to the end.
func Rotate(word string) string {
	runes := []rune(word)
	if len(runes) < 2 {
		return word
	}
	return string(append(runes[1:], runes[0]))
}
