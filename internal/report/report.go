// Package report summarizes extracted questions for console output.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"stooda/internal/question"
)

// SubjectCount is the number of questions found for one subject.
type SubjectCount struct {
	Subject question.Subject `json:"subject"`
	Count   int              `json:"count"`
}

// FormatCount is the number of questions sharing one answer format.
type FormatCount struct {
	Format question.Format `json:"format"`
	Count  int             `json:"count"`
}

// Summary aggregates counts over a question set. ImagesWritten is only
// known right after an extraction run and stays zero otherwise.
type Summary struct {
	Total         int            `json:"total"`
	WithImages    int            `json:"with_images"`
	ImagesWritten int            `json:"images_written,omitempty"`
	BySubject     []SubjectCount `json:"by_subject,omitempty"`
	ByFormat      []FormatCount  `json:"by_format,omitempty"`
	NumberMin     int            `json:"number_min,omitempty"`
	NumberMax     int            `json:"number_max,omitempty"`
	UniqueNumbers int            `json:"unique_numbers,omitempty"`
}

// Build computes the summary for a question set. Subjects and formats
// are listed alphabetically; the number range covers only numbered
// questions.
func Build(questions []question.Question) Summary {
	s := Summary{Total: len(questions)}

	bySubject := map[question.Subject]int{}
	byFormat := map[question.Format]int{}
	numbers := map[int]bool{}
	for _, q := range questions {
		bySubject[q.Subject]++
		if q.Format != "" {
			byFormat[q.Format]++
		}
		if len(q.Images) > 0 {
			s.WithImages++
		}
		if q.Number > 0 {
			if s.NumberMin == 0 || q.Number < s.NumberMin {
				s.NumberMin = q.Number
			}
			if q.Number > s.NumberMax {
				s.NumberMax = q.Number
			}
			numbers[q.Number] = true
		}
	}

	for subject, count := range bySubject {
		s.BySubject = append(s.BySubject, SubjectCount{Subject: subject, Count: count})
	}
	sort.Slice(s.BySubject, func(i, j int) bool {
		return s.BySubject[i].Subject < s.BySubject[j].Subject
	})
	for format, count := range byFormat {
		s.ByFormat = append(s.ByFormat, FormatCount{Format: format, Count: count})
	}
	sort.Slice(s.ByFormat, func(i, j int) bool {
		return s.ByFormat[i].Format < s.ByFormat[j].Format
	})
	s.UniqueNumbers = len(numbers)

	return s
}

// Render writes the summary as plain text.
func (s Summary) Render(w io.Writer) {
	fmt.Fprintf(w, "Questions: %d\n", s.Total)
	if len(s.BySubject) > 0 {
		fmt.Fprintln(w, "By subject:")
		for _, sc := range s.BySubject {
			fmt.Fprintf(w, "  %s: %d\n", sc.Subject, sc.Count)
		}
	}
	if len(s.ByFormat) > 0 {
		fmt.Fprintln(w, "By format:")
		for _, fc := range s.ByFormat {
			fmt.Fprintf(w, "  %s: %d\n", fc.Format, fc.Count)
		}
	}
	fmt.Fprintf(w, "With images: %d\n", s.WithImages)
	if s.ImagesWritten > 0 {
		fmt.Fprintf(w, "Images written: %d\n", s.ImagesWritten)
	}
	if s.UniqueNumbers > 0 {
		fmt.Fprintf(w, "Numbers: %d to %d (%d unique)\n", s.NumberMin, s.NumberMax, s.UniqueNumbers)
	}
}

// SampleJSON renders one question as indented JSON, the same shape the
// bank file stores.
func SampleJSON(q question.Question) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(q); err != nil {
		return "", fmt.Errorf("encode question: %w", err)
	}
	return buf.String(), nil
}
