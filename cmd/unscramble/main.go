// Package main provides the CLI entrypoint for unscramble.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/unscramble/internal/config"
	"github.com/verte-zerg/unscramble/internal/game"
	"github.com/verte-zerg/unscramble/internal/generator"
	"github.com/verte-zerg/unscramble/internal/logging"
	"github.com/verte-zerg/unscramble/internal/model"
	"github.com/verte-zerg/unscramble/internal/tui"
	"github.com/verte-zerg/unscramble/internal/wordlist"
)

const (
	defaultLogLevel = "disabled"

	envLogLevel = "UNSCRAMBLE_LOG_LEVEL"
	envLogFile  = "UNSCRAMBLE_LOG_FILE"
)

var (
	playLang     string
	playWordList string
	playMaxWords int
	playScore    int
	playSeed     int64
	playLogLevel string
	playLogFile  string
)

func main() {
	// .env is optional.
	_ = godotenv.Load()
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "unscramble",
		Short:         "Terminal word-scramble game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playLang, "lang", wordlist.DefaultLang, "word bank language code")
	rootCmd.Flags().StringVar(&playWordList, "wordlist", "", "path to a word list file (overrides --lang)")
	rootCmd.Flags().IntVar(&playMaxWords, "max-words", game.DefaultMaxWords, "words per game")
	rootCmd.Flags().IntVar(&playScore, "score", game.DefaultScoreIncrease, "points per correct guess")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed (0 uses the current time)")
	rootCmd.Flags().StringVar(&playLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error, disabled)")
	rootCmd.Flags().StringVar(&playLogFile, "log-file", config.DefaultLogPath(), "log file path")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	words, source, err := loadWordBank(cfg)
	if err != nil {
		return err
	}
	cleaned, dropped := wordlist.Clean(words, wordlist.FilterForLang(cfg.Lang))
	if dropped > 0 {
		logger.Warn().Str("source", source).Int("dropped", dropped).Msg("unplayable words removed from bank")
	}
	bank, err := game.NewWordBank(cleaned)
	if err != nil {
		return fmt.Errorf("invalid word bank %s: %w", source, err)
	}

	rules := model.Rules{MaxWords: cfg.MaxWords, ScoreIncrease: cfg.ScoreIncrease}
	session, err := game.NewSession(bank, rules, generator.New(cfg.Seed), logger)
	if err != nil {
		if errors.Is(err, game.ErrBankTooSmall) {
			return fmt.Errorf("%w (use a larger word list or lower --max-words)", err)
		}
		return err
	}
	logger.Info().
		Str("session", session.ID()).
		Str("source", source).
		Int("bank", bank.Len()).
		Int("max_words", rules.MaxWords).
		Msg("game started")

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("unscramble needs an interactive terminal")
	}

	program := tea.NewProgram(tui.NewModel(session, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveConfig layers flags over environment over the config file.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "lang", &playLang, fileCfg.Game.Lang)
	applyConfig(cmd, "wordlist", &playWordList, fileCfg.Game.WordList)
	applyConfig(cmd, "max-words", &playMaxWords, fileCfg.Game.MaxWords)
	applyConfig(cmd, "score", &playScore, fileCfg.Game.ScoreIncrease)
	applyConfig(cmd, "seed", &playSeed, fileCfg.Game.Seed)
	applyConfig(cmd, "log-level", &playLogLevel, fileCfg.Log.Level)
	applyConfig(cmd, "log-file", &playLogFile, fileCfg.Log.File)
	applyConfig(cmd, "log-level", &playLogLevel, lookupEnv(envLogLevel))
	applyConfig(cmd, "log-file", &playLogFile, lookupEnv(envLogFile))

	return model.Config{
		Lang:          strings.ToLower(strings.TrimSpace(playLang)),
		WordListPath:  playWordList,
		MaxWords:      playMaxWords,
		ScoreIncrease: playScore,
		Seed:          playSeed,
		LogLevel:      playLogLevel,
		LogFile:       playLogFile,
	}, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available word bank languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	langs, err := listLangs(config.DefaultWordListDir())
	if err != nil {
		return err
	}
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// listLangs returns the built-in language plus every *.txt bank in dir.
func listLangs(dir string) ([]string, error) {
	found := map[string]struct{}{wordlist.DefaultLang: {}}
	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		found[strings.TrimSuffix(name, ".txt")] = struct{}{}
	}
	langs := make([]string, 0, len(found))
	for lang := range found {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

// loadWordBank reads the configured word list. The built-in English bank is
// used when no file is configured and none exists for English.
func loadWordBank(cfg model.Config) ([]string, string, error) {
	path := cfg.WordListPath
	if path == "" {
		path = config.DefaultWordListPath(cfg.Lang)
	}
	words, err := wordlist.LoadWords(path)
	if err == nil {
		return words, path, nil
	}
	if cfg.WordListPath == "" && cfg.Lang == wordlist.DefaultLang && errors.Is(err, fs.ErrNotExist) {
		return wordlist.Default(), "built-in", nil
	}
	return nil, "", wordListLoadError(cfg.Lang, path, err)
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func lookupEnv(name string) *string {
	v, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# unscramble configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# lang = %q              # Word bank language
# wordlist = ""            # Path to a word list file (overrides lang)
# max-words = %d          # Words per game
# score = %d              # Points per correct guess
# seed = 0                 # Random seed (0 uses the current time)

[log]
# level = %q        # debug, info, warn, error, disabled
# file = %q
`,
		wordlist.DefaultLang,
		game.DefaultMaxWords,
		game.DefaultScoreIncrease,
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if cfg.MaxWords <= 0 {
		return fmt.Errorf("--max-words must be > 0")
	}
	if cfg.ScoreIncrease < 0 {
		return fmt.Errorf("--score must be >= 0")
	}
	lvl, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	if lvl != zerolog.Disabled && cfg.LogFile == "" {
		return fmt.Errorf("--log-file must not be empty when logging is enabled")
	}
	return nil
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		fmt.Sprintf("language %q not found", lang),
		"Run: unscramble langs",
		"Add a bank: one word per line in " + config.DefaultWordListDir(),
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
