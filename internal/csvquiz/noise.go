package csvquiz

import "strings"

// DefaultSourcePrefix is the literal prefix of generated source tags.
const DefaultSourcePrefix = "PREP FL"

// NoiseFilter recognizes header repetitions, section headers and other
// non-question rows by their question stem.
type NoiseFilter struct {
	Exact    []string
	Contains []string
}

// DefaultNoiseFilter returns the stock noise rules.
func DefaultNoiseFilter() NoiseFilter {
	return NoiseFilter{
		Exact:    []string{"Question Stem"},
		Contains: []string{"Final Exam", "Quiz"},
	}
}

// IsNoise reports whether a trimmed question stem matches any noise rule.
func (f NoiseFilter) IsNoise(stem string) bool {
	for _, exact := range f.Exact {
		if stem == exact {
			return true
		}
	}
	for _, fragment := range f.Contains {
		if fragment != "" && strings.Contains(stem, fragment) {
			return true
		}
	}
	return false
}

// Options controls how quiz CSV rows are filtered and tagged.
type Options struct {
	SourcePrefix string
	Noise        NoiseFilter
}

// DefaultOptions returns the stock extraction options.
func DefaultOptions() Options {
	return Options{SourcePrefix: DefaultSourcePrefix, Noise: DefaultNoiseFilter()}
}

func (o Options) prefix() string {
	if strings.TrimSpace(o.SourcePrefix) == "" {
		return DefaultSourcePrefix
	}
	return strings.TrimSpace(o.SourcePrefix)
}
