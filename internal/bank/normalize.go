package bank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"stooda/internal/question"
)

// Issue describes a single bank validation problem.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates every issue found in a bank.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "bank validation failed: " + strings.Join(parts, "; ")
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Normalize fills generated fields and normalizes every question. A
// bank without an ID gets a fresh one.
func Normalize(b Bank) Bank {
	b.ID = strings.TrimSpace(b.ID)
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.Name = strings.TrimSpace(b.Name)

	questions := make([]question.Question, len(b.Questions))
	for i, q := range b.Questions {
		questions[i] = q.Normalize()
	}
	b.Questions = questions
	return b
}

// Validate checks the bank identity and every question, reporting all
// issues at once.
func Validate(b Bank) error {
	c := &issueCollector{}

	if b.Version != 1 {
		c.add("version", fmt.Sprintf("unsupported version %d, expected 1", b.Version))
	}
	if _, err := uuid.Parse(b.ID); err != nil {
		c.add("id", fmt.Sprintf("invalid identifier %q", b.ID))
	}

	seen := map[int]int{}
	for i, q := range b.Questions {
		if q.Number > 0 {
			if first, ok := seen[q.Number]; ok {
				c.add(fmt.Sprintf("questions[%d].number", i),
					fmt.Sprintf("duplicate number %d, first used by questions[%d]", q.Number, first))
			} else {
				seen[q.Number] = i
			}
		}
		if err := q.Validate(); err != nil {
			var verr *question.ValidationError
			if errors.As(err, &verr) {
				for _, issue := range verr.Issues {
					c.add(fmt.Sprintf("questions[%d].%s", i, issue.Field), issue.Message)
				}
			} else {
				c.add(fmt.Sprintf("questions[%d]", i), err.Error())
			}
		}
	}

	return c.result()
}
