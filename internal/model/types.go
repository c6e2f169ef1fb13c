// Package model defines shared data structures.
package model

// Config defines game settings.
type Config struct {
	Lang          string
	WordListPath  string
	MaxWords      int
	ScoreIncrease int
	Seed          int64
	LogLevel      string
	LogFile       string
}

// Rules bounds a play-through.
type Rules struct {
	MaxWords      int
	ScoreIncrease int
}

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	Scrambled string
	Score     int
	WordCount int
	MaxWords  int
	Complete  bool
}

// Round records one presented word.
type Round struct {
	Word      string
	Scrambled string
	Solved    bool
}
