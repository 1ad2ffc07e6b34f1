package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// LoadEnv reads TUIMATH_* overrides. Unset variables leave fields nil.
func LoadEnv() (QuizConfig, error) {
	return loadEnv(env.Options{})
}

func loadEnv(opts env.Options) (QuizConfig, error) {
	var cfg QuizConfig
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return QuizConfig{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
