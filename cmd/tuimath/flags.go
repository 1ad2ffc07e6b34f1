package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuimath/internal/config"
	"github.com/verte-zerg/tuimath/internal/logging"
	"github.com/verte-zerg/tuimath/internal/model"
	"github.com/verte-zerg/tuimath/internal/quiz"
)

const minTimeLimit = time.Second

type quizFlags struct {
	level     int
	quick     bool
	timeLimit time.Duration
	seed      int64
	logLevel  string
	logFile   string
}

func (f *quizFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.level, "level", 0, "difficulty level 1-5 (0 opens the menu)")
	cmd.Flags().BoolVar(&f.quick, "quick", false, "accept the answer as soon as it matches")
	cmd.Flags().DurationVar(&f.timeLimit, "time-limit", quiz.DefaultTimeLimit, "time allowed per question")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "log file path (default: XDG state dir)")
}

// resolveConfig merges values with precedence flag > env > file > default.
func resolveConfig(cmd *cobra.Command, flags *quizFlags, file, env config.QuizConfig) (model.Config, error) {
	f := *flags
	for _, src := range []config.QuizConfig{file, env} {
		applyIntConfig(cmd, "level", &f.level, src.Level)
		applyBoolConfig(cmd, "quick", &f.quick, src.QuickMode)
		if err := applyDurationConfig(cmd, "time-limit", &f.timeLimit, src.TimeLimit); err != nil {
			return model.Config{}, err
		}
		applyInt64Config(cmd, "seed", &f.seed, src.Seed)
		applyStringConfig(cmd, "log-level", &f.logLevel, src.LogLevel)
		applyStringConfig(cmd, "log-file", &f.logFile, src.LogFile)
	}

	cfg := model.Config{
		Level:     f.level,
		QuickMode: f.quick,
		TimeLimit: f.timeLimit,
		Seed:      f.seed,
		LogLevel:  f.logLevel,
		LogFile:   f.logFile,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
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

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *string) error {
	if value == nil {
		return nil
	}
	if cmd.Flags().Changed(name) {
		return nil
	}
	d, err := time.ParseDuration(*value)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", name, *value, err)
	}
	*target = d
	return nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Level < 0 || cfg.Level > int(model.MaxLevel) {
		return fmt.Errorf("--level must be between 0 and %d", model.MaxLevel)
	}
	if cfg.TimeLimit < minTimeLimit {
		return fmt.Errorf("--time-limit must be at least %s", minTimeLimit)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuimath configuration
# Uncomment a value to enable it. TUIMATH_* variables override these,
# and CLI flags override both.

[quiz]
# level = 0               # Start level 1-5 (0 opens the menu)
# quick = false           # Accept the answer as soon as it matches
# time-limit = %q       # Time allowed per question
# seed = 0                # Random seed (0 picks one)
# log-level = %q        # debug, info, warn, error
# log-file = ""           # Log file path (default: XDG state dir)
`,
		quiz.DefaultTimeLimit.String(),
		logging.DefaultLevel,
	)
}
