package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Load reads, parses, normalizes, and validates a config file. Environment
// overrides are applied before normalization.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	return finish(cfg)
}

// Resolve loads the config named by explicit, then by QUIZCONV_CONFIG, then the
// nearest .quizconv/config.yml above startDir. When no file exists the defaults are
// used. The returned path is empty in that case.
func Resolve(explicit, startDir string) (Config, string, error) {
	path := strings.TrimSpace(explicit)
	if path == "" {
		path = getEnv(EnvConfigPath, "")
	}
	if path == "" {
		found, err := FindConfigPath(startDir)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				cfg, err := finish(Config{})
				return cfg, "", err
			}
			return Config{}, "", err
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

func finish(cfg Config) (Config, error) {
	applyEnv(&cfg)
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
