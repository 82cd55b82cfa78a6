package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadDocumentYAML verifies YAML documents load and normalize.
func TestLoadDocumentYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exam.yml")
	payload := `exam:
  name: "UFRGS 2024"
  type: vestibular
  date: 2024-01-15
pages:
  - number: 1
    text: "PORTUGUÊS\n1. Questão de exemplo.\n(A) um\n"
    images:
      - format: PNG
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	if doc.Exam.Name != "UFRGS 2024" || doc.Exam.Date.String() != "2024-01-15" {
		t.Fatalf("unexpected exam info %+v", doc.Exam)
	}
	if len(doc.Pages) != 1 || doc.Pages[0].Number != 1 {
		t.Fatalf("unexpected pages %+v", doc.Pages)
	}
	if doc.Pages[0].Images[0].Format != "png" {
		t.Fatalf("image format not normalized: %+v", doc.Pages[0].Images[0])
	}
}

// TestLoadDocumentJSON verifies JSON documents are parsed strictly.
func TestLoadDocumentJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exam.json")
	payload := `{
  "exam": {"type": "vestibular", "date": "2024-01-15"},
  "pages": [{"number": 1, "text": "1. Pergunta.\n(A) sim\n"}]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	if doc.Exam.Type != "vestibular" {
		t.Fatalf("unexpected exam %+v", doc.Exam)
	}
}

// TestParseDocumentDefaultsToYAML verifies bytes without a .json
// extension are read as YAML.
func TestParseDocumentDefaultsToYAML(t *testing.T) {
	payload := []byte("exam:\n  date: 2024-01-15\npages:\n  - number: 1\n    text: oi\n")
	doc, err := ParseDocument(payload, "")
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	if len(doc.Pages) != 1 || doc.Pages[0].Text != "oi" {
		t.Fatalf("unexpected pages %+v", doc.Pages)
	}
}

// TestLoadDocumentRejectsUnknownFields verifies strict decoding for
// both formats.
func TestLoadDocumentRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "exam.yml")
	if err := os.WriteFile(yamlPath, []byte("exam:\n  date: 2024-01-15\nsurprise: true\n"), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	if _, err := LoadDocument(yamlPath); err == nil {
		t.Fatalf("expected error for unknown YAML field")
	}
	jsonPath := filepath.Join(dir, "exam.json")
	if err := os.WriteFile(jsonPath, []byte(`{"exam":{"date":"2024-01-15"},"pages":[],"surprise":true}`), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	if _, err := LoadDocument(jsonPath); err == nil {
		t.Fatalf("expected error for unknown JSON field")
	}
}

// TestNormalizeDocumentValidation verifies missing metadata is
// collected into one error.
func TestNormalizeDocumentValidation(t *testing.T) {
	doc := Document{
		Exam: ExamInfo{Difficulty: "brutal"},
		Pages: []Page{
			{Number: 2, Text: "a"},
			{Number: 2, Text: "b"},
			{Number: 0, Text: "c", Images: []Image{{}}},
		},
	}
	_, err := NormalizeDocument(doc)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	want := map[string]bool{
		"exam.date":                 false,
		"exam.difficulty":           false,
		"pages[1].number":           false,
		"pages[2].number":           false,
		"pages[2].images[0].format": false,
	}
	for _, issue := range validationErr.Issues {
		if _, ok := want[issue.Field]; ok {
			want[issue.Field] = true
		}
	}
	for field, seen := range want {
		if !seen {
			t.Fatalf("missing issue for %q in %v", field, validationErr.Issues)
		}
	}
}
