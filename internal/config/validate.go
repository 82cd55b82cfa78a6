package config

import (
	"fmt"
	"strings"

	"stooda/internal/question"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.Extraction.MinQuestionLength < 0 {
		add("extraction.min_question_length", "must be >= 0")
	}
	if cfg.Extraction.ContextWindow < 1 {
		add("extraction.context_window", "must be >= 1")
	}

	if cfg.Images.MaxPerQuestion < 0 {
		add("images.max_per_question", "must be >= 0")
	}
	if cfg.Images.PageLookahead < 1 {
		add("images.page_lookahead", "must be >= 1")
	}
	if strings.TrimSpace(cfg.Images.Dir) == "" {
		add("images.dir", "is required")
	}

	subjectNames := map[string]struct{}{}
	for i, rule := range cfg.Subjects {
		fieldPrefix := fmt.Sprintf("subjects[%d]", i)
		name := strings.TrimSpace(rule.Name)
		if name == "" {
			add(fieldPrefix+".name", "is required")
		} else if _, exists := subjectNames[name]; exists {
			add(fieldPrefix+".name", fmt.Sprintf("duplicate subject %q", name))
		} else {
			subjectNames[name] = struct{}{}
		}
		if len(rule.Keywords) == 0 {
			add(fieldPrefix+".keywords", "at least one keyword is required")
		}
		for k, keyword := range rule.Keywords {
			if strings.TrimSpace(keyword) == "" {
				add(fmt.Sprintf("%s.keywords[%d]", fieldPrefix, k), "is required")
			}
		}
	}

	if strings.TrimSpace(cfg.Defaults.ExamType) == "" {
		add("defaults.exam_type", "is required")
	}
	if _, err := question.ParseDifficulty(cfg.Defaults.Difficulty); err != nil {
		add("defaults.difficulty", "must be easy, medium or hard")
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		add("logging.level", fmt.Sprintf("unsupported level %q", cfg.Logging.Level))
	}
	if cfg.Logging.MaxSizeMB < 1 {
		add("logging.max_size_mb", "must be >= 1")
	}
	if cfg.Logging.MaxBackups < 0 {
		add("logging.max_backups", "must be >= 0")
	}
	if cfg.Logging.MaxAgeDays < 0 {
		add("logging.max_age_days", "must be >= 0")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
