// Package main provides the CLI entrypoint for humbench.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/humbench/internal/bench"
	"github.com/verte-zerg/humbench/internal/chimp"
	"github.com/verte-zerg/humbench/internal/clock"
	"github.com/verte-zerg/humbench/internal/config"
	"github.com/verte-zerg/humbench/internal/generator"
	"github.com/verte-zerg/humbench/internal/model"
	"github.com/verte-zerg/humbench/internal/reaction"
	"github.com/verte-zerg/humbench/internal/scores"
	"github.com/verte-zerg/humbench/internal/stats"
	"github.com/verte-zerg/humbench/internal/store"
	"github.com/verte-zerg/humbench/internal/tui"
	"github.com/verte-zerg/humbench/internal/typing"
	"github.com/verte-zerg/humbench/internal/wordlist"
)

const (
	defaultView       = "home"
	defaultWords      = 25
	defaultMinDelayMs = 2000
	defaultMaxDelayMs = 5000
	defaultRevealMs   = 1000
	defaultPauseMs    = 600
)

var (
	runView     string
	runWordList string
	runWords    int
	runSeed     int64

	clearYes bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "humbench",
		Short:         "Terminal human benchmark: reaction, chimp, and typing tests",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runBenchCmd,
	}

	rootCmd.Flags().StringVar(&runView, "view", defaultView, "initial view (home, reaction, chimp, typing, dashboard)")
	rootCmd.Flags().StringVar(&runWordList, "wordlist", "", "generate typing samples from this word list")
	rootCmd.Flags().IntVar(&runWords, "words", defaultWords, "words per generated typing sample")
	rootCmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed (0 picks one from the clock)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newClearCmd())

	return rootCmd
}

func runBenchCmd(cmd *cobra.Command, _ []string) error {
	paths, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	fileCfg, err := config.LoadConfig(paths.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "wordlist", &runWordList, fileCfg.Typing.WordList)
	applyIntConfig(cmd, "words", &runWords, fileCfg.Typing.Words)

	cfg := buildConfig(fileCfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}
	start, err := bench.ParseView(runView)
	if err != nil {
		return err
	}

	logFile, err := openLog(paths.LogPath)
	if err != nil {
		logErrf("logging disabled: %v\n", err)
		log.SetOutput(io.Discard)
	} else {
		defer func() {
			_ = logFile.Close()
		}()
	}

	gen := newGenerator(cfg.Seed)
	samples, err := resolveSamples(cfg.Typing, gen)
	if err != nil {
		return err
	}

	kv, closeKV := openScoreKV(paths.DBPath)
	defer closeKV()

	queue := clock.NewQueue()
	hub := newHub(cfg, queue, gen, scores.New(kv), samples)
	program := tea.NewProgram(tui.NewModel(hub, queue, start), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newHub(cfg model.Config, queue *clock.Queue, gen *generator.Generator, sc *scores.Store, samples *typing.Samples) *bench.Hub {
	sys := clock.System{}
	return &bench.Hub{
		Scores:   sc,
		Reaction: reaction.New(cfg.Reaction, sys, queue, gen, sc),
		Chimp:    chimp.New(cfg.Chimp, queue, gen, sc),
		Typing:   typing.New(sys, sc),
		Samples:  samples,
	}
}

// openScoreKV opens the SQLite store, falling back to memory so the
// benchmarks stay usable without persistence.
func openScoreKV(path string) (scores.KV, func()) {
	st, err := openStore(path)
	if err != nil {
		log.Printf("scores will not persist: %v", err)
		return store.NewMemory(), func() {}
	}
	return st, func() {
		if cerr := st.Close(); cerr != nil {
			log.Printf("failed to close db: %v", cerr)
		}
	}
}

func openStore(path string) (*store.Store, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "humbench")
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return f, nil
}

func newGenerator(seed int64) *generator.Generator {
	if seed == 0 {
		return generator.New()
	}
	return generator.NewSeeded(seed)
}

func resolveSamples(cfg model.TypingConfig, gen *generator.Generator) (*typing.Samples, error) {
	if cfg.WordListPath == "" {
		return typing.NewFixedSamples(cfg.Samples), nil
	}
	words, err := wordlist.LoadWords(cfg.WordListPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	return typing.NewGeneratedSamples(words, cfg.Words, gen), nil
}

func buildConfig(fileCfg config.FileConfig) model.Config {
	return model.Config{
		Reaction: model.ReactionConfig{
			MinDelay: millis(fileCfg.Reaction.MinDelayMs, defaultMinDelayMs),
			MaxDelay: millis(fileCfg.Reaction.MaxDelayMs, defaultMaxDelayMs),
		},
		Chimp: model.ChimpConfig{
			Reveal: millis(fileCfg.Chimp.RevealMs, defaultRevealMs),
			Pause:  millis(fileCfg.Chimp.PauseMs, defaultPauseMs),
		},
		Typing: model.TypingConfig{
			Samples:      fileCfg.Typing.Samples,
			WordListPath: runWordList,
			Words:        runWords,
		},
		Seed: runSeed,
	}
}

func millis(value *int, fallback int) time.Duration {
	if value == nil {
		return time.Duration(fallback) * time.Millisecond
	}
	return time.Duration(*value) * time.Millisecond
}

func validateConfig(cfg model.Config) error {
	if cfg.Reaction.MinDelay <= 0 {
		return fmt.Errorf("reaction min-delay must be > 0")
	}
	if cfg.Reaction.MaxDelay < cfg.Reaction.MinDelay {
		return fmt.Errorf("reaction max-delay must be >= min-delay")
	}
	if cfg.Chimp.Reveal <= 0 {
		return fmt.Errorf("chimp reveal must be > 0")
	}
	if cfg.Chimp.Pause < 0 {
		return fmt.Errorf("chimp pause must be >= 0")
	}
	if cfg.Typing.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	return nil
}

func newScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Print best scores",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	paths, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	st, err := openStore(paths.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	sc := scores.New(st).WithLogger(log.New(os.Stderr, "", 0))
	if err := stats.RenderBests(cmd.OutOrStdout(), sc.Bests()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all best scores",
		Args:  cobra.NoArgs,
		RunE:  runClearCmd,
	}
	cmd.Flags().BoolVar(&clearYes, "yes", false, "skip confirmation")
	return cmd
}

func runClearCmd(cmd *cobra.Command, _ []string) error {
	ok, err := confirmClear(cmd, clearYes, term.IsTerminal(int(os.Stdin.Fd())))
	if err != nil {
		return err
	}
	if !ok {
		logErrln("Aborted.")
		return nil
	}
	paths, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	st, err := openStore(paths.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	scores.New(st).WithLogger(log.New(os.Stderr, "", 0)).Clear()
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Scores cleared."); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func confirmClear(cmd *cobra.Command, yes, interactive bool) (bool, error) {
	if yes {
		return true, nil
	}
	if !interactive {
		return false, fmt.Errorf("stdin is not a terminal; rerun with --yes to clear scores")
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), "Clear all stored best scores? [y/N] "); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
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
	paths, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	path := paths.ConfigPath
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

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# humbench configuration
# Uncomment a value to enable it. CLI flags override config values.

[reaction]
# min-delay = %d          # Shortest wait before the stimulus (ms)
# max-delay = %d          # Longest wait before the stimulus (ms)

[chimp]
# reveal = %d             # How long numbers stay visible (ms)
# pause = %d               # Pause before the next level (ms)

[typing]
# samples = ["The quick brown fox jumps over the lazy dog."]
# wordlist = "/path/to/words.txt"  # Generate samples from a word list
# words = %d                # Words per generated sample
`,
		defaultMinDelayMs,
		defaultMaxDelayMs,
		defaultRevealMs,
		defaultPauseMs,
		defaultWords,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
