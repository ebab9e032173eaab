package config

import (
	"fmt"
	"strings"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "error"}

// Validate reports every problem with a normalized config.
func Validate(cfg *Config) error {
	issues := &issueCollector{}
	if cfg.Version != 1 {
		issues.add("version", "must be 1")
	}
	if !contains(validLogLevels, cfg.Logging.Level) {
		issues.add("logging.level", fmt.Sprintf("must be one of %s", strings.Join(validLogLevels, "|")))
	}
	if !contains([]string{FormatPretty, FormatJSON}, cfg.Logging.Format) {
		issues.add("logging.format", "must be pretty|json")
	}
	if !contains([]string{ColorAuto, ColorAlways, ColorNever}, cfg.Color) {
		issues.add("color", "must be auto|always|never")
	}
	validateList(issues, "noise.exact", cfg.Noise.Exact)
	validateList(issues, "noise.contains", cfg.Noise.Contains)
	return issues.result()
}

func validateList(issues *issueCollector, field string, values []string) {
	for i, value := range values {
		if strings.TrimSpace(value) == "" {
			issues.add(fmt.Sprintf("%s[%d]", field, i), "must not be empty")
		}
	}
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
