package question

import (
	"fmt"
	"strings"
)

// Issue captures a single validation problem.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
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

// Validate checks the required fields and the internal consistency of
// the question. All problems are collected into one *ValidationError
// rather than stopping at the first.
func (q Question) Validate() error {
	collector := &issueCollector{}

	if q.Number < 0 {
		collector.add("number", "must not be negative")
	}
	if strings.TrimSpace(q.Text) == "" {
		collector.add("text", "is required")
	}
	if strings.TrimSpace(string(q.Subject)) == "" {
		collector.add("subject", "is required")
	}
	if strings.TrimSpace(string(q.ExamType)) == "" {
		collector.add("exam_type", "is required")
	}
	if q.IssueDate.IsZero() {
		collector.add("issue_date", "is required")
	}
	switch {
	case q.Difficulty == DifficultyUnspecified:
		collector.add("difficulty", "is required")
	case !q.Difficulty.IsRated():
		collector.add("difficulty", fmt.Sprintf("unknown difficulty %d", int(q.Difficulty)))
	}

	seenLetters := map[string]struct{}{}
	for i, alt := range q.Alternatives {
		prefix := fmt.Sprintf("alternatives[%d]", i)
		letter := strings.TrimSpace(alt.Letter)
		if letter == "" {
			collector.add(prefix+".letter", "is required")
		} else if _, exists := seenLetters[letter]; exists {
			collector.add(prefix+".letter", fmt.Sprintf("duplicate letter %q", letter))
		} else {
			seenLetters[letter] = struct{}{}
		}
		if strings.TrimSpace(alt.Text) == "" {
			collector.add(prefix+".text", "is required")
		}
	}

	for i, img := range q.Images {
		prefix := fmt.Sprintf("images[%d]", i)
		if strings.TrimSpace(img.File) == "" {
			collector.add(prefix+".file", "is required")
		}
		if img.Page < 1 {
			collector.add(prefix+".page", "must be at least 1")
		}
	}

	return collector.result()
}
