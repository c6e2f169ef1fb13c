// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

// DefaultLang is the language of the built-in word bank.
const DefaultLang = "en"

//go:embed default_en.txt
var embeddedEnglish string

// Default returns the built-in English word bank.
func Default() []string {
	return parseWords(bufio.NewScanner(strings.NewReader(embeddedEnglish)))
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	scanner := bufio.NewScanner(file)
	words := parseWords(scanner)
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

func parseWords(scanner *bufio.Scanner) []string {
	var words []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}
