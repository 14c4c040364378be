package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/humbench/internal/config"
	"github.com/verte-zerg/humbench/internal/generator"
	"github.com/verte-zerg/humbench/internal/model"
	"github.com/verte-zerg/humbench/internal/scores"
)

func intPtr(v int) *int {
	return &v
}

func TestBuildConfigDefaults(t *testing.T) {
	runWordList = ""
	runWords = defaultWords
	runSeed = 0
	cfg := buildConfig(config.FileConfig{})
	if cfg.Reaction.MinDelay != 2*time.Second || cfg.Reaction.MaxDelay != 5*time.Second {
		t.Fatalf("unexpected reaction delays: %+v", cfg.Reaction)
	}
	if cfg.Chimp.Reveal != time.Second || cfg.Chimp.Pause != 600*time.Millisecond {
		t.Fatalf("unexpected chimp timing: %+v", cfg.Chimp)
	}
	if err := validateConfig(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestBuildConfigFromFile(t *testing.T) {
	runWords = defaultWords
	cfg := buildConfig(config.FileConfig{
		Reaction: config.ReactionConfig{MinDelayMs: intPtr(100), MaxDelayMs: intPtr(300)},
		Chimp:    config.ChimpConfig{PauseMs: intPtr(0)},
	})
	if cfg.Reaction.MinDelay != 100*time.Millisecond || cfg.Reaction.MaxDelay != 300*time.Millisecond {
		t.Fatalf("unexpected reaction delays: %+v", cfg.Reaction)
	}
	if cfg.Chimp.Pause != 0 || cfg.Chimp.Reveal != time.Second {
		t.Fatalf("unexpected chimp timing: %+v", cfg.Chimp)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := model.Config{
		Reaction: model.ReactionConfig{MinDelay: time.Second, MaxDelay: 2 * time.Second},
		Chimp:    model.ChimpConfig{Reveal: time.Second},
		Typing:   model.TypingConfig{Words: 5},
	}
	cases := []struct {
		name   string
		mutate func(*model.Config)
	}{
		{"zero min delay", func(c *model.Config) { c.Reaction.MinDelay = 0 }},
		{"max below min", func(c *model.Config) { c.Reaction.MaxDelay = 500 * time.Millisecond }},
		{"zero reveal", func(c *model.Config) { c.Chimp.Reveal = 0 }},
		{"negative pause", func(c *model.Config) { c.Chimp.Pause = -time.Millisecond }},
		{"zero words", func(c *model.Config) { c.Typing.Words = 0 }},
	}
	if err := validateConfig(valid); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	for _, tc := range cases {
		cfg := valid
		tc.mutate(&cfg)
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestResolveSamples(t *testing.T) {
	gen := generator.NewSeeded(1)
	fixed, err := resolveSamples(model.TypingConfig{Samples: []string{"one two"}, Words: 3}, gen)
	if err != nil {
		t.Fatalf("resolve fixed: %v", err)
	}
	if fixed.Generated() || fixed.Current() != "one two" {
		t.Fatalf("expected fixed sample, got %q", fixed.Current())
	}

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("cat\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	generated, err := resolveSamples(model.TypingConfig{WordListPath: path, Words: 3}, gen)
	if err != nil {
		t.Fatalf("resolve generated: %v", err)
	}
	if !generated.Generated() || generated.Current() != "Cat cat cat" {
		t.Fatalf("expected generated sample, got %q", generated.Current())
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, []byte("# nothing\n"), 0o644); err != nil {
		t.Fatalf("write empty: %v", err)
	}
	if _, err := resolveSamples(model.TypingConfig{WordListPath: empty, Words: 3}, gen); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	meta, err := toml.Decode(defaultConfigTemplate(), &cfg)
	if err != nil {
		t.Fatalf("decode template: %v", err)
	}
	if len(meta.Undecoded()) != 0 {
		t.Fatalf("unexpected keys: %v", meta.Undecoded())
	}
	if cfg.Reaction.MinDelayMs != nil {
		t.Fatalf("expected commented defaults")
	}
}

func TestConfirmClear(t *testing.T) {
	cmd := newClearCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if ok, err := confirmClear(cmd, true, false); err != nil || !ok {
		t.Fatalf("expected --yes to confirm, got %v %v", ok, err)
	}
	if _, err := confirmClear(cmd, false, false); err == nil {
		t.Fatalf("expected error without terminal")
	}

	cmd.SetIn(strings.NewReader("y\n"))
	if ok, err := confirmClear(cmd, false, true); err != nil || !ok {
		t.Fatalf("expected y to confirm, got %v %v", ok, err)
	}
	cmd.SetIn(strings.NewReader("\n"))
	if ok, err := confirmClear(cmd, false, true); err != nil || ok {
		t.Fatalf("expected empty answer to decline, got %v %v", ok, err)
	}
	if !strings.Contains(out.String(), "[y/N]") {
		t.Fatalf("expected prompt, got %q", out.String())
	}
}

func TestScoresAndClearCommands(t *testing.T) {
	t.Setenv("HUMBENCH_DB_PATH", filepath.Join(t.TempDir(), "scores.db"))

	st, err := openStore(os.Getenv("HUMBENCH_DB_PATH"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Put(context.Background(), scores.Key, `{"reaction":231}`); err != nil {
		t.Fatalf("seed scores: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"scores"})
	if err := root.Execute(); err != nil {
		t.Fatalf("scores: %v", err)
	}
	if !strings.Contains(out.String(), "231 ms") {
		t.Fatalf("expected reaction best in output, got %q", out.String())
	}

	out.Reset()
	root.SetArgs([]string{"clear", "--yes"})
	if err := root.Execute(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	clearYes = false

	out.Reset()
	root.SetArgs([]string{"scores"})
	if err := root.Execute(); err != nil {
		t.Fatalf("scores after clear: %v", err)
	}
	if strings.Contains(out.String(), "231 ms") {
		t.Fatalf("expected scores cleared, got %q", out.String())
	}
}
