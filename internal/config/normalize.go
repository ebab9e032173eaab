package config

import (
	"strings"

	"quizconv/internal/csvquiz"
	"quizconv/internal/markdown"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	Normalize(&cfg)
	return cfg
}

// Normalize fills unset fields with defaults and canonicalizes enum values.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	cfg.SourcePrefix = strings.TrimSpace(cfg.SourcePrefix)
	if cfg.SourcePrefix == "" {
		cfg.SourcePrefix = csvquiz.DefaultSourcePrefix
	}
	if cfg.Noise.Exact == nil && cfg.Noise.Contains == nil {
		defaults := csvquiz.DefaultNoiseFilter()
		cfg.Noise.Exact = defaults.Exact
		cfg.Noise.Contains = defaults.Contains
	}
	if strings.TrimSpace(cfg.Markdown.OutputDir) == "" {
		cfg.Markdown.OutputDir = DefaultOutputDir
	}
	if strings.TrimSpace(cfg.Markdown.DefaultSection) == "" {
		cfg.Markdown.DefaultSection = markdown.DefaultSection
	}
	cfg.Logging.Level = lowerOr(cfg.Logging.Level, "info")
	cfg.Logging.Format = lowerOr(cfg.Logging.Format, FormatPretty)
	cfg.Color = lowerOr(cfg.Color, ColorAuto)
}

func lowerOr(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}

// CSVOptions returns extractor and formatter options for this configuration.
func (c Config) CSVOptions() csvquiz.Options {
	return csvquiz.Options{
		SourcePrefix: c.SourcePrefix,
		Noise: csvquiz.NoiseFilter{
			Exact:    c.Noise.Exact,
			Contains: c.Noise.Contains,
		},
	}
}

// MarkdownOptions returns parser options for this configuration.
func (c Config) MarkdownOptions() markdown.Options {
	return markdown.Options{DefaultSection: c.Markdown.DefaultSection}
}
