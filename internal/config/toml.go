// Package config loads quiz settings from the config file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Quiz QuizConfig `toml:"quiz"`
}

// QuizConfig maps quiz settings. Nil fields are unset.
type QuizConfig struct {
	Level      *int     `toml:"level" env:"KLOKKIJKEN_LEVEL"`
	Kinds      []string `toml:"kinds" env:"KLOKKIJKEN_KINDS" envSeparator:","`
	Rounds     *int     `toml:"rounds" env:"KLOKKIJKEN_ROUNDS"`
	FocusWeak  *bool    `toml:"focus-weak" env:"KLOKKIJKEN_FOCUS_WEAK"`
	WeakFactor *float64 `toml:"weak-factor" env:"KLOKKIJKEN_WEAK_FACTOR"`
	Seed       *int64   `toml:"seed" env:"KLOKKIJKEN_SEED"`
}

// LoadConfig reads the TOML config at path and overlays KLOKKIJKEN_*
// environment variables. A missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	var cfg FileConfig
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	if err := env.Parse(&cfg.Quiz); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Template is written by "klokkijken config" when no file exists yet.
const Template = `# klokkijken configuration
# Command line flags override these values, KLOKKIJKEN_* variables override
# the file.

[quiz]
# 1 hele uren, 2 kwartieren, 3 vijf minuten, 4 alles
# level = 2

# analog_to_text, text_to_analog, digital_to_text, text_to_digital,
# analog_to_digital, digital_to_analog
# kinds = ["analog_to_text", "text_to_analog"]

# 0 plays until stopped
# rounds = 0

# focus-weak = false
# weak-factor = 2.0

# 0 seeds from the current time
# seed = 0
`

// EnsureConfigFile writes Template to path unless a file already exists.
func EnsureConfigFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}
