package config

import (
	"testing"

	"jifdict/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("JIF_INPUT_FILE", "")
	t.Setenv("JIF_OUTPUT_FILE", "")
	t.Setenv("JIF_SERVE_ADDR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultInputFile, cfg.Paths.InputFile)
	assert.Equal(t, DefaultOutputFile, cfg.Paths.OutputFile)
	assert.Equal(t, DefaultServeAddr, cfg.Server.Addr)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("JIF_INPUT_FILE", "jcr.csv")
	t.Setenv("JIF_OUTPUT_FILE", "out/lookup.json")
	t.Setenv("JIF_SERVE_ADDR", "127.0.0.1:9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "jcr.csv", cfg.Paths.InputFile)
	assert.Equal(t, "out/lookup.json", cfg.Paths.OutputFile)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
}

func TestValidateConfigRejectsEmptyOutput(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Addr: ":8080"}}
	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoadWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JIF_OUTPUT_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputFile, cfg.Paths.OutputFile)
}
