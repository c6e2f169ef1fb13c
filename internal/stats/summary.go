// Package stats summarizes finished play-throughs.
package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/unscramble/internal/model"
)

// Summary aggregates the rounds of one play-through.
type Summary struct {
	Score    int
	Played   int
	Solved   int
	Skipped  int
	Accuracy float64
}

// Summarize computes totals for rounds and the final score.
func Summarize(rounds []model.Round, score int) Summary {
	s := Summary{Score: score, Played: len(rounds)}
	for _, r := range rounds {
		if r.Solved {
			s.Solved++
		}
	}
	s.Skipped = s.Played - s.Solved
	if s.Played > 0 {
		s.Accuracy = float64(s.Solved) / float64(s.Played)
	}
	return s
}

// RenderSummary prints a one-line summary.
func RenderSummary(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w, "Solved %d of %d (%.0f%%), skipped %d\n", s.Solved, s.Played, s.Accuracy*100, s.Skipped)
	return err
}

// RenderRounds prints a table of rounds.
func RenderRounds(w io.Writer, rounds []model.Round) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No words played.")
		return err
	}
	headers := []string{"#", "Scrambled", "Word", "Result"}
	rows := make([][]string, 0, len(rounds))
	for i, r := range rounds {
		result := "skipped"
		if r.Solved {
			result = "solved"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), r.Scrambled, r.Word, result})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
