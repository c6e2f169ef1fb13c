// Package game holds the word-scramble session state.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/unscramble/internal/wordlist"
)

var (
	// ErrBankTooSmall is returned when a bank cannot supply a full session.
	ErrBankTooSmall = errors.New("word bank too small")
	// ErrInvalidWord is returned for bank entries that cannot be played.
	ErrInvalidWord = errors.New("invalid word")
)

// WordBank is an immutable list of distinct playable words.
type WordBank struct {
	words []string
}

// NewWordBank validates words and returns a bank holding a copy of them.
func NewWordBank(words []string) (*WordBank, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words", ErrBankTooSmall)
	}
	seen := make(map[string]struct{}, len(words))
	out := make([]string, len(words))
	for i, word := range words {
		if word != strings.ToLower(word) || word != strings.TrimSpace(word) {
			return nil, fmt.Errorf("%w: %q is not normalized", ErrInvalidWord, word)
		}
		if !wordlist.Scramblable(word) {
			return nil, fmt.Errorf("%w: %q needs two distinct characters", ErrInvalidWord, word)
		}
		if _, ok := seen[word]; ok {
			return nil, fmt.Errorf("%w: duplicate %q", ErrInvalidWord, word)
		}
		seen[word] = struct{}{}
		out[i] = word
	}
	return &WordBank{words: out}, nil
}

// Len returns the number of words in the bank.
func (b *WordBank) Len() int {
	return len(b.words)
}

// Word returns the word at index i.
func (b *WordBank) Word(i int) string {
	return b.words[i]
}
