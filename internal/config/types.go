package config

// Config drives extraction, image handling and logging. It is loaded
// from stooda.yml and every field has a working default, so an empty
// file (plus version) is a valid config.
type Config struct {
	Version    int           `yaml:"version"`
	Extraction Extraction    `yaml:"extraction"`
	Images     Images        `yaml:"images"`
	Subjects   []SubjectRule `yaml:"subjects"`
	Defaults   Defaults      `yaml:"defaults"`
	Logging    Logging       `yaml:"logging"`
}

// Extraction tunes the text pipeline.
type Extraction struct {
	// MinQuestionLength drops questions whose raw text is this many
	// characters or shorter. Zero means the default of 5.
	MinQuestionLength int `yaml:"min_question_length"`

	// ContextWindow is how many bytes of text before a question number
	// are scanned for page and subject markers. Zero means the default
	// of 500.
	ContextWindow int `yaml:"context_window"`
}

// Images tunes figure association and output.
type Images struct {
	// Dir is where extracted image files are written, relative to the
	// output directory.
	Dir string `yaml:"dir"`

	// MaxPerQuestion caps how many figures one question may reference.
	MaxPerQuestion int `yaml:"max_per_question"`

	// PageLookahead is how many pages past the question's own page are
	// searched for its figure.
	PageLookahead int `yaml:"page_lookahead"`
}

// SubjectRule adds detection keywords beyond the built-in disciplines.
type SubjectRule struct {
	// Name is the subject recorded on matching questions.
	Name string `yaml:"name"`

	// Keywords are matched against page headings, case-insensitively.
	Keywords []string `yaml:"keywords"`
}

// Defaults fills question fields the source document does not carry.
type Defaults struct {
	ExamType   string `yaml:"exam_type"`
	Difficulty string `yaml:"difficulty"`
}

// Logging configures the zap logger and its optional rotating file
// sink.
type Logging struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// File enables a JSON log file at this path when non-empty.
	File string `yaml:"file"`

	MaxSizeMB  int `yaml:"max_size_mb"`
	MaxBackups int `yaml:"max_backups"`
	MaxAgeDays int `yaml:"max_age_days"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}
