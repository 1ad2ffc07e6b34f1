package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Quiz.Level)
	assert.Nil(t, cfg.Quiz.QuickMode)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigDecodesQuizSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[quiz]
level = 3
quick = true
time-limit = "15s"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Quiz.Level)
	assert.Equal(t, 3, *cfg.Quiz.Level)
	require.NotNil(t, cfg.Quiz.QuickMode)
	assert.True(t, *cfg.Quiz.QuickMode)
	require.NotNil(t, cfg.Quiz.TimeLimit)
	assert.Equal(t, "15s", *cfg.Quiz.TimeLimit)
	assert.Nil(t, cfg.Quiz.Seed)
}

func TestLoadConfigRejectsBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[quiz\nlevel = "), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	cfg, err := loadEnv(env.Options{Environment: map[string]string{
		"TUIMATH_LEVEL":      "4",
		"TUIMATH_QUICK":      "true",
		"TUIMATH_LOG_LEVEL":  "debug",
		"TUIMATH_TIME_LIMIT": "30s",
	}})
	require.NoError(t, err)
	require.NotNil(t, cfg.Level)
	assert.Equal(t, 4, *cfg.Level)
	require.NotNil(t, cfg.QuickMode)
	assert.True(t, *cfg.QuickMode)
	require.NotNil(t, cfg.LogLevel)
	assert.Equal(t, "debug", *cfg.LogLevel)
	assert.Nil(t, cfg.Seed)
	assert.Nil(t, cfg.LogFile)
}

func TestLoadEnvRejectsBadValue(t *testing.T) {
	_, err := loadEnv(env.Options{Environment: map[string]string{"TUIMATH_LEVEL": "high"}})
	assert.Error(t, err)
}

func TestDefaultPathsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	assert.Equal(t, filepath.Join("/tmp/cfg", "tuimath", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/tmp/state", "tuimath", "tuimath.log"), DefaultLogPath())
}
