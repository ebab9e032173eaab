package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the loader.
const (
	EnvConfigPath   = "QUIZCONV_CONFIG"
	EnvLogLevel     = "QUIZCONV_LOG_LEVEL"
	EnvLogFormat    = "QUIZCONV_LOG_FORMAT"
	EnvColor        = "QUIZCONV_COLOR"
	EnvSourcePrefix = "QUIZCONV_SOURCE_PREFIX"
)

// LoadDotEnv loads variables from .env files when present. Variables already set in
// the environment win.
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...) // .env is optional
}

// applyEnv overrides file values with environment variables.
func applyEnv(cfg *Config) {
	cfg.Logging.Level = getEnv(EnvLogLevel, cfg.Logging.Level)
	cfg.Logging.Format = getEnv(EnvLogFormat, cfg.Logging.Format)
	cfg.Color = getEnv(EnvColor, cfg.Color)
	cfg.SourcePrefix = getEnv(EnvSourcePrefix, cfg.SourcePrefix)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
