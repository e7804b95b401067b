package config

import (
	stderrors "errors"
	"os"
	"strings"

	"jifdict/internal/errors"

	"github.com/joho/godotenv"
)

// Defaults used when the environment does not say otherwise
const (
	DefaultInputFile  = "JCRImpactFactors2025.xlsx"
	DefaultOutputFile = "data.json"
	DefaultServeAddr  = ":8080"
)

// Config represents the complete application configuration
type Config struct {
	Paths   PathConfig
	Server  ServerConfig
	Logging LoggingConfig
}

// PathConfig holds file system paths
type PathConfig struct {
	InputFile  string
	OutputFile string
}

// ServerConfig holds lookup server settings
type ServerConfig struct {
	Addr    string
	GinMode string
}

// LoggingConfig holds log settings
type LoggingConfig struct {
	Level string
}

// Load reads an optional .env file, then configuration from environment
// variables, and validates it
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, os.ErrNotExist) {
		return nil, errors.WithCode(errors.CodeConfigInvalid, errors.Wrap(err, "failed to read .env"))
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only
func FromEnv() (*Config, error) {
	config := &Config{
		Paths:   *loadPathConfig(),
		Server:  *loadServerConfig(),
		Logging: LoggingConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadPathConfig() *PathConfig {
	return &PathConfig{
		InputFile:  getEnvOrDefault("JIF_INPUT_FILE", DefaultInputFile),
		OutputFile: getEnvOrDefault("JIF_OUTPUT_FILE", DefaultOutputFile),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:    getEnvOrDefault("JIF_SERVE_ADDR", DefaultServeAddr),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Paths.OutputFile) == "" {
		return errors.ConfigInvalid("output file is required")
	}
	if strings.TrimSpace(config.Server.Addr) == "" {
		return errors.ConfigInvalid("serve address is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
