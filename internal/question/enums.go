package question

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Subject is the school discipline a question belongs to. The set is
// open: any non-empty value is accepted, the constants cover the
// disciplines UFRGS exams are split into.
type Subject string

const (
	SubjectPortuguese  Subject = "Português"
	SubjectLiterature  Subject = "Literatura"
	SubjectMathematics Subject = "Matemática"
	SubjectPhysics     Subject = "Física"
	SubjectChemistry   Subject = "Química"
	SubjectHistory     Subject = "História"
	SubjectGeography   Subject = "Geografia"
	SubjectBiology     Subject = "Biologia"
)

// ExamType names the kind of assessment a question was issued in. Open
// set, same as Subject.
type ExamType string

const (
	ExamTypeVestibular ExamType = "vestibular"
	ExamTypeENEM       ExamType = "enem"
	ExamTypeMock       ExamType = "simulado"
	ExamTypeQuiz       ExamType = "quiz"
)

// Format classifies how a question is answered.
type Format string

const (
	FormatMultipleChoice Format = "multiple_choice"
	FormatTrueFalse      Format = "true_false"
	FormatCalculation    Format = "calculation"
	FormatReading        Format = "text_interpretation"
)

// Difficulty is an ordered rating. The zero value means no rating was
// assigned; rated values order as easy < medium < hard.
type Difficulty int

const (
	DifficultyUnspecified Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

var difficultyNames = map[Difficulty]string{
	DifficultyEasy:   "easy",
	DifficultyMedium: "medium",
	DifficultyHard:   "hard",
}

// String returns the lowercase name, or "" for the zero value.
func (d Difficulty) String() string {
	return difficultyNames[d]
}

// IsRated reports whether d carries an actual rating.
func (d Difficulty) IsRated() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// ParseDifficulty maps a name to its Difficulty, ignoring case. The
// empty string parses to DifficultyUnspecified.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DifficultyUnspecified, nil
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyUnspecified, fmt.Errorf("unknown difficulty %q", s)
}

// MarshalText encodes the difficulty as its name so JSON carries
// "easy", not 1.
func (d Difficulty) MarshalText() ([]byte, error) {
	if d != DifficultyUnspecified && !d.IsRated() {
		return nil, fmt.Errorf("invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a difficulty name.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the difficulty as its name.
func (d Difficulty) MarshalYAML() (interface{}, error) {
	if d != DifficultyUnspecified && !d.IsRated() {
		return nil, fmt.Errorf("invalid difficulty %d", int(d))
	}
	return d.String(), nil
}

// UnmarshalYAML decodes a difficulty name from a YAML scalar.
func (d *Difficulty) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
