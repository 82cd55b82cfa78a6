package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stooda/internal/config"
	"stooda/internal/question"
)

func testExtractor(cfg config.Config) *Extractor {
	e := New(cfg, nil)
	e.runID = func() (string, error) { return "20240115T120000Z-0a1b2c3d4e5f", nil }
	e.now = func() time.Time { return time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC) }
	return e
}

func testDocument(t *testing.T) Document {
	t.Helper()
	passage := strings.Repeat("A leitura atenta do poema revela novas camadas de sentido. ", 7)
	return Document{
		Exam: ExamInfo{Name: "UFRGS 2024", Date: mustDate(t, 2024, time.January, 15)},
		Pages: []Page{
			{
				Number: 1,
				Text: "PORTUGUÊS\n\n" + passage + "\n" +
					"1. Com base na figura abaixo, assinale a alternativa correta.\n" +
					"(A) primeira\n(B) segunda\n(C) terceira\n(D) quarta\n(E) quinta\n",
				Images: []Image{{Format: "png", Data: []byte{0x89, 0x50}}},
			},
			{
				Number: 2,
				Text: "MATEMÁTICA\n\n" +
					"2. Calcule o valor de x^2 + 2 para x igual a dois.\n" +
					"(A) quatro\n(B) seis\n",
			},
		},
	}
}

// TestExtract runs the whole pipeline over a two-page document.
func TestExtract(t *testing.T) {
	outDir := t.TempDir()
	result, err := testExtractor(config.Default()).Extract(testDocument(t), outDir)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.RunID != "20240115T120000Z-0a1b2c3d4e5f" {
		t.Fatalf("unexpected run id %q", result.RunID)
	}
	if len(result.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(result.Questions))
	}

	first := result.Questions[0]
	if first.Number != 1 || first.Subject != question.SubjectPortuguese {
		t.Fatalf("unexpected first question %d %q", first.Number, first.Subject)
	}
	if len(first.Alternatives) != 5 || first.Alternatives[4].Letter != "E" {
		t.Fatalf("unexpected alternatives %+v", first.Alternatives)
	}
	if len(first.Images) != 1 || first.Images[0].File != "pag1_img0.png" {
		t.Fatalf("unexpected images %+v", first.Images)
	}
	if first.ExamType != question.ExamTypeVestibular {
		t.Fatalf("config default exam type not applied: %q", first.ExamType)
	}
	if first.Difficulty != question.DifficultyMedium {
		t.Fatalf("config default difficulty not applied: %q", first.Difficulty)
	}
	if first.IssueDate.String() != "2024-01-15" {
		t.Fatalf("unexpected issue date %q", first.IssueDate)
	}

	second := result.Questions[1]
	if second.Number != 2 || second.Subject != question.SubjectMathematics {
		t.Fatalf("unexpected second question %d %q", second.Number, second.Subject)
	}
	if second.Format != question.FormatCalculation {
		t.Fatalf("unexpected format %q", second.Format)
	}
	if len(second.Formulas) != 1 || second.Formulas[0] != "x^2" {
		t.Fatalf("unexpected formulas %v", second.Formulas)
	}
	if len(second.Images) != 0 {
		t.Fatalf("second question should have no images: %+v", second.Images)
	}

	if result.ImagesWritten != 1 {
		t.Fatalf("expected 1 image written, got %d", result.ImagesWritten)
	}
	if _, err := os.Stat(filepath.Join(outDir, "question_images", "pag1_img0.png")); err != nil {
		t.Fatalf("image file missing: %v", err)
	}
	if result.Skipped != 0 {
		t.Fatalf("expected no skipped questions, got %d", result.Skipped)
	}

	if result.Summary.Total != 2 || result.Summary.ImagesWritten != 1 {
		t.Fatalf("unexpected summary %+v", result.Summary)
	}
	if len(result.Summary.BySubject) != 2 || result.Summary.BySubject[0].Subject != question.SubjectMathematics {
		t.Fatalf("unexpected subject counts %+v", result.Summary.BySubject)
	}
}

// TestExtractSkipsShortQuestions verifies the length filter counts
// rather than fails.
func TestExtractSkipsShortQuestions(t *testing.T) {
	doc := Document{
		Exam: ExamInfo{Date: mustDate(t, 2024, time.January, 15)},
		Pages: []Page{{
			Number: 1,
			Text:   "GEOGRAFIA\n\n1. ok\n2. Questão completa sobre o relevo gaúcho.\n(A) planalto\n(B) planície\n",
		}},
	}
	result, err := testExtractor(config.Default()).Extract(doc, t.TempDir())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(result.Questions) != 1 || result.Questions[0].Number != 2 {
		t.Fatalf("unexpected questions %+v", result.Questions)
	}
	if result.Skipped != 1 {
		t.Fatalf("expected 1 skipped, got %d", result.Skipped)
	}
}

// TestExtractSortsByNumber verifies output order follows question
// numbers, not document order.
func TestExtractSortsByNumber(t *testing.T) {
	doc := Document{
		Exam: ExamInfo{Date: mustDate(t, 2024, time.January, 15)},
		Pages: []Page{{
			Number: 1,
			Text: "HISTÓRIA\n\n" +
				"9. Questão sobre a Revolução Farroupilha no sul.\n(A) sim\n(B) não\n" +
				"3. Questão sobre o período colonial brasileiro.\n(A) sim\n(B) não\n",
		}},
	}
	result, err := testExtractor(config.Default()).Extract(doc, t.TempDir())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(result.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(result.Questions))
	}
	if result.Questions[0].Number != 3 || result.Questions[1].Number != 9 {
		t.Fatalf("questions not sorted: %d, %d", result.Questions[0].Number, result.Questions[1].Number)
	}
}

// TestExtractDocumentMetadataWins verifies document exam fields beat
// the config defaults.
func TestExtractDocumentMetadataWins(t *testing.T) {
	doc := Document{
		Exam: ExamInfo{Type: "enem", Difficulty: "hard", Date: mustDate(t, 2023, time.November, 5)},
		Pages: []Page{{
			Number: 1,
			Text:   "BIOLOGIA\n\n4. Sobre a fotossíntese nas plantas vasculares.\n(A) clorofila\n(B) mitocôndria\n",
		}},
	}
	result, err := testExtractor(config.Default()).Extract(doc, t.TempDir())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	q := result.Questions[0]
	if q.ExamType != question.ExamTypeENEM || q.Difficulty != question.DifficultyHard {
		t.Fatalf("document metadata lost: %q %q", q.ExamType, q.Difficulty)
	}
	if q.IssueDate.String() != "2023-11-05" {
		t.Fatalf("unexpected issue date %q", q.IssueDate)
	}
}
