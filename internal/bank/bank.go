package bank

import (
	"github.com/google/uuid"

	"stooda/internal/question"
)

// Bank is a saved collection of question records, the JSON artifact
// extraction produces and other tools consume.
type Bank struct {
	Version int    `json:"version" yaml:"version"`
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`

	Questions []question.Question `json:"questions" yaml:"questions"`

	// Metadata carries provenance such as the extraction run ID. Keys
	// are free-form.
	Metadata map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// New builds a version-1 bank with a fresh identifier.
func New(name string, questions []question.Question) Bank {
	return Bank{
		Version:   1,
		ID:        uuid.NewString(),
		Name:      name,
		Questions: questions,
	}
}
