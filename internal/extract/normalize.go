package extract

import (
	"fmt"
	"strings"

	"stooda/internal/question"
)

// Issue captures a validation problem in an exam document.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more document validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for document validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("document validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeDocument trims metadata and validates an exam document.
func NormalizeDocument(doc Document) (Document, error) {
	collector := &issueCollector{}

	doc.Exam.Name = strings.TrimSpace(doc.Exam.Name)
	doc.Exam.Type = strings.TrimSpace(doc.Exam.Type)
	doc.Exam.Difficulty = strings.TrimSpace(doc.Exam.Difficulty)

	if doc.Exam.Date.IsZero() {
		collector.add("exam.date", "is required")
	}
	if _, err := question.ParseDifficulty(doc.Exam.Difficulty); err != nil {
		collector.add("exam.difficulty", "must be easy, medium or hard")
	}

	if len(doc.Pages) == 0 {
		collector.add("pages", "must include at least one page")
	}

	seenNumbers := map[int]struct{}{}
	for i, page := range doc.Pages {
		prefix := fmt.Sprintf("pages[%d]", i)
		if page.Number < 1 {
			collector.add(prefix+".number", "must be at least 1")
		} else if _, exists := seenNumbers[page.Number]; exists {
			collector.add(prefix+".number", fmt.Sprintf("duplicate page number %d", page.Number))
		} else {
			seenNumbers[page.Number] = struct{}{}
		}
		for j, img := range page.Images {
			format := strings.ToLower(strings.TrimSpace(img.Format))
			doc.Pages[i].Images[j].Format = format
			if format == "" {
				collector.add(fmt.Sprintf("%s.images[%d].format", prefix, j), "is required")
			}
		}
	}

	if err := collector.result(); err != nil {
		return Document{}, err
	}
	return doc, nil
}
