// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Quiz QuizConfig `toml:"quiz"`
}

// QuizConfig maps quiz settings. Nil fields were not set.
type QuizConfig struct {
	Level     *int    `toml:"level" env:"TUIMATH_LEVEL"`
	QuickMode *bool   `toml:"quick" env:"TUIMATH_QUICK"`
	TimeLimit *string `toml:"time-limit" env:"TUIMATH_TIME_LIMIT"`
	Seed      *int64  `toml:"seed" env:"TUIMATH_SEED"`
	LogLevel  *string `toml:"log-level" env:"TUIMATH_LOG_LEVEL"`
	LogFile   *string `toml:"log-file" env:"TUIMATH_LOG_FILE"`
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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
