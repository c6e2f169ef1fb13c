// Package wordlist provides word list filtering helpers.
package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return filterEnglishASCII
	default:
		return func(string) bool { return true }
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// Scramblable reports whether a word has at least two distinct characters,
// so some permutation of it differs from the word itself.
func Scramblable(word string) bool {
	var first rune
	for i, r := range word {
		if i == 0 {
			first = r
			continue
		}
		if r != first {
			return true
		}
	}
	return false
}

// Clean lowercases and trims words, then drops duplicates, words rejected by
// keep, and words that cannot be scrambled. The second result is the number
// of dropped entries.
func Clean(words []string, keep FilterFunc) ([]string, int) {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	dropped := 0
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if _, ok := seen[word]; ok {
			dropped++
			continue
		}
		if keep != nil && !keep(word) {
			dropped++
			continue
		}
		if !Scramblable(word) {
			dropped++
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out, dropped
}
