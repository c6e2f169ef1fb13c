package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/unscramble/internal/generator"
	"github.com/verte-zerg/unscramble/internal/model"
)

// Defaults for a play-through.
const (
	DefaultMaxWords      = 10
	DefaultScoreIncrease = 20
)

// DefaultRules returns the standard play-through bounds.
func DefaultRules() model.Rules {
	return model.Rules{MaxWords: DefaultMaxWords, ScoreIncrease: DefaultScoreIncrease}
}

// Session is the mutable state of one play-through. It is not safe for
// concurrent use.
type Session struct {
	id     string
	bank   *WordBank
	rules  model.Rules
	gen    *generator.Generator
	logger zerolog.Logger

	currentWord   string
	scrambledWord string
	score         int
	wordCount     int
	usedWords     map[string]struct{}
	rounds        []model.Round

	onChange func(model.Snapshot)
}

// NewSession validates rules against bank and presents the first word.
func NewSession(bank *WordBank, rules model.Rules, gen *generator.Generator, logger zerolog.Logger) (*Session, error) {
	if bank == nil {
		return nil, fmt.Errorf("%w: no bank", ErrBankTooSmall)
	}
	if rules.MaxWords <= 0 {
		return nil, fmt.Errorf("max words must be > 0")
	}
	if rules.ScoreIncrease < 0 {
		return nil, fmt.Errorf("score increase must be >= 0")
	}
	if bank.Len() < rules.MaxWords {
		return nil, fmt.Errorf("%w: %d words for %d per game", ErrBankTooSmall, bank.Len(), rules.MaxWords)
	}
	s := &Session{
		bank:   bank,
		rules:  rules,
		gen:    gen,
		logger: logger,
	}
	s.start()
	return s, nil
}

// OnChange registers fn to be called after every state change.
func (s *Session) OnChange(fn func(model.Snapshot)) {
	s.onChange = fn
}

// ID identifies the current play-through. It changes on Reset.
func (s *Session) ID() string { return s.id }

// CurrentWord returns the unscrambled word being played.
func (s *Session) CurrentWord() string { return s.currentWord }

// ScrambledWord returns the displayed permutation of the current word.
func (s *Session) ScrambledWord() string { return s.scrambledWord }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// WordCount returns how many words have been presented.
func (s *Session) WordCount() int { return s.wordCount }

// MaxWords returns the number of words per play-through.
func (s *Session) MaxWords() int { return s.rules.MaxWords }

// Complete reports whether the last word of the play-through is showing.
func (s *Session) Complete() bool { return s.wordCount >= s.rules.MaxWords }

// UsedWords returns the words presented so far, in order.
func (s *Session) UsedWords() []string {
	out := make([]string, len(s.rounds))
	for i, r := range s.rounds {
		out[i] = r.Word
	}
	return out
}

// Rounds returns a copy of the round history.
func (s *Session) Rounds() []model.Round {
	return append([]model.Round(nil), s.rounds...)
}

// Snapshot returns a read-only view for rendering.
func (s *Session) Snapshot() model.Snapshot {
	return model.Snapshot{
		Scrambled: s.scrambledWord,
		Score:     s.score,
		WordCount: s.wordCount,
		MaxWords:  s.rules.MaxWords,
		Complete:  s.Complete(),
	}
}

// SubmitGuess reports whether candidate matches the current word, ignoring
// case. A first correct guess for a word adds the score increase.
func (s *Session) SubmitGuess(candidate string) bool {
	if !strings.EqualFold(candidate, s.currentWord) {
		s.logger.Info().Str("session", s.id).Int("word", s.wordCount).Msg("incorrect guess")
		return false
	}
	last := &s.rounds[len(s.rounds)-1]
	if last.Solved {
		return true
	}
	last.Solved = true
	s.score += s.rules.ScoreIncrease
	s.logger.Info().Str("session", s.id).Int("word", s.wordCount).Int("score", s.score).Msg("correct guess")
	s.notify()
	return true
}

// Advance presents the next word. It returns false, leaving state
// unchanged, once the play-through is complete.
func (s *Session) Advance() bool {
	if s.Complete() {
		return false
	}
	if !s.selectNextWord() {
		return false
	}
	s.notify()
	return true
}

// Reset starts a new play-through.
func (s *Session) Reset() {
	s.logger.Info().Str("session", s.id).Int("score", s.score).Int("words", s.wordCount).Msg("session reset")
	s.start()
	s.notify()
}

func (s *Session) start() {
	s.id = uuid.NewString()
	s.score = 0
	s.wordCount = 0
	s.usedWords = make(map[string]struct{}, s.rules.MaxWords)
	s.rounds = make([]model.Round, 0, s.rules.MaxWords)
	// NewSession guarantees the bank covers MaxWords.
	s.selectNextWord()
}

func (s *Session) selectNextWord() bool {
	candidates := make([]string, 0, s.bank.Len()-len(s.usedWords))
	for i := 0; i < s.bank.Len(); i++ {
		word := s.bank.Word(i)
		if _, used := s.usedWords[word]; !used {
			candidates = append(candidates, word)
		}
	}
	if len(candidates) == 0 {
		s.logger.Error().Str("session", s.id).Msg("word bank exhausted")
		return false
	}
	word := candidates[s.gen.Pick(len(candidates))]
	scrambled := s.gen.Scramble(word, generator.DefaultShuffleAttempts)

	s.currentWord = word
	s.scrambledWord = scrambled
	s.usedWords[word] = struct{}{}
	s.wordCount++
	s.rounds = append(s.rounds, model.Round{Word: word, Scrambled: scrambled})
	s.logger.Debug().Str("session", s.id).Int("word", s.wordCount).Str("current", word).Msg("word selected")
	return true
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
}
