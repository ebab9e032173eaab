package config

// Config is the optional project configuration read from .quizconv/config.yml.
type Config struct {
	Version      int            `yaml:"version"`
	SourcePrefix string         `yaml:"source_prefix"`
	Noise        NoiseConfig    `yaml:"noise"`
	Markdown     MarkdownConfig `yaml:"markdown"`
	Logging      LoggingConfig  `yaml:"logging"`
	Color        string         `yaml:"color"`
}

// NoiseConfig lists question stems that are treated as export artifacts.
type NoiseConfig struct {
	Exact    []string `yaml:"exact"`
	Contains []string `yaml:"contains"`
}

type MarkdownConfig struct {
	OutputDir      string `yaml:"output_dir"`
	DefaultSection string `yaml:"default_section"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Supported enum values.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// DefaultOutputDir receives generated workbooks when no output path is given.
const DefaultOutputDir = "Generated_Output_Files"
