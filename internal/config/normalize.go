package config

import "strings"

// Normalize fills unset fields with their defaults. Validation runs on
// the normalized config, so defaults are never re-checked by callers.
func Normalize(cfg *Config) {
	if cfg.Extraction.MinQuestionLength == 0 {
		cfg.Extraction.MinQuestionLength = 5
	}
	if cfg.Extraction.ContextWindow == 0 {
		cfg.Extraction.ContextWindow = 500
	}
	if strings.TrimSpace(cfg.Images.Dir) == "" {
		cfg.Images.Dir = "question_images"
	}
	if cfg.Images.MaxPerQuestion == 0 {
		cfg.Images.MaxPerQuestion = 2
	}
	if cfg.Images.PageLookahead == 0 {
		cfg.Images.PageLookahead = 5
	}
	if strings.TrimSpace(cfg.Defaults.ExamType) == "" {
		cfg.Defaults.ExamType = "vestibular"
	}
	if strings.TrimSpace(cfg.Defaults.Difficulty) == "" {
		cfg.Defaults.Difficulty = "medium"
	}
	if strings.TrimSpace(cfg.Logging.Level) == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.MaxSizeMB == 0 {
		cfg.Logging.MaxSizeMB = 100
	}
	if cfg.Logging.MaxBackups == 0 {
		cfg.Logging.MaxBackups = 5
	}
	if cfg.Logging.MaxAgeDays == 0 {
		cfg.Logging.MaxAgeDays = 30
	}
}
