package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Game.MaxWords != nil || cfg.Log.Level != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigDecodesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[game]
lang = "de"
max-words = 5
score = 10
seed = 42

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Lang == nil || *cfg.Game.Lang != "de" {
		t.Fatalf("unexpected lang: %v", cfg.Game.Lang)
	}
	if cfg.Game.MaxWords == nil || *cfg.Game.MaxWords != 5 {
		t.Fatalf("unexpected max-words: %v", cfg.Game.MaxWords)
	}
	if cfg.Game.ScoreIncrease == nil || *cfg.Game.ScoreIncrease != 10 {
		t.Fatalf("unexpected score: %v", cfg.Game.ScoreIncrease)
	}
	if cfg.Game.Seed == nil || *cfg.Game.Seed != 42 {
		t.Fatalf("unexpected seed: %v", cfg.Game.Seed)
	}
	if cfg.Game.WordList != nil {
		t.Fatalf("expected unset wordlist, got %q", *cfg.Game.WordList)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %v", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nwords = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "game.words") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "unscramble", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultWordListPath("fr"); got != filepath.Join("/tmp/cfg", "unscramble", "wordlists", "fr.txt") {
		t.Fatalf("unexpected word list path: %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/tmp/state", "unscramble", "unscramble.log") {
		t.Fatalf("unexpected log path: %s", got)
	}
}
