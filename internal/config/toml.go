package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Reaction ReactionConfig `toml:"reaction"`
	Chimp    ChimpConfig    `toml:"chimp"`
	Typing   TypingConfig   `toml:"typing"`
}

// ReactionConfig maps reaction test settings. Durations are milliseconds.
type ReactionConfig struct {
	MinDelayMs *int `toml:"min-delay"`
	MaxDelayMs *int `toml:"max-delay"`
}

// ChimpConfig maps chimp test settings. Durations are milliseconds.
type ChimpConfig struct {
	RevealMs *int `toml:"reveal"`
	PauseMs  *int `toml:"pause"`
}

// TypingConfig maps typing test settings.
type TypingConfig struct {
	Samples  []string `toml:"samples"`
	WordList *string  `toml:"wordlist"`
	Words    *int     `toml:"words"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
