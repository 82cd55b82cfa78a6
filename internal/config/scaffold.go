package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1

extraction:
  min_question_length: 5
  context_window: 500

images:
  dir: "question_images"
  max_per_question: 2
  page_lookahead: 5

defaults:
  exam_type: "vestibular"
  difficulty: "medium"

logging:
  level: "info"
`

const sampleDocument = `exam:
  name: "UFRGS 2024"
  type: "vestibular"
  date: "2024-01-15"
pages:
  - number: 1
    text: |
      PORTUGUÊS

      1. Assinale a alternativa que completa corretamente a frase.
      (A) primeira opção
      (B) segunda opção
      (C) terceira opção
      (D) quarta opção
      (E) quinta opção
`

// Scaffold writes a starter config plus a sample exam document that
// documents the input format. It refuses to overwrite existing files.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	baseDir := filepath.Dir(configPath)
	examsDir := filepath.Join(baseDir, "exams")
	if err := os.MkdirAll(examsDir, 0o755); err != nil {
		return fmt.Errorf("create exams dir: %w", err)
	}

	samplePath := filepath.Join(examsDir, "sample.yml")
	if info, err := os.Stat(samplePath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("sample path %q is a directory", samplePath)
		}
		return fmt.Errorf("sample document already exists at %q", samplePath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat sample document: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(samplePath, []byte(sampleDocument), 0o644); err != nil {
		return fmt.Errorf("write sample document: %w", err)
	}
	return nil
}
