package question

import "strings"

// New builds a validated Question from the six core attributes. The
// alternatives slice is copied, so the caller keeps ownership of its
// argument. On failure the error is a *ValidationError listing every
// problem found.
func New(text string, alternatives []Alternative, subject Subject, examType ExamType, issueDate Date, difficulty Difficulty) (Question, error) {
	q := Question{
		Text:         text,
		Alternatives: alternatives,
		Subject:      subject,
		ExamType:     examType,
		IssueDate:    issueDate,
		Difficulty:   difficulty,
	}
	q = q.Normalize()
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Normalize returns a copy of q with surrounding whitespace trimmed
// from every text field and a nil alternatives slice replaced by an
// empty one. The receiver is never mutated.
func (q Question) Normalize() Question {
	out := q.Clone()
	out.Text = strings.TrimSpace(out.Text)
	out.Instruction = strings.TrimSpace(out.Instruction)
	out.Subject = Subject(strings.TrimSpace(string(out.Subject)))
	out.ExamType = ExamType(strings.TrimSpace(string(out.ExamType)))
	out.Format = Format(strings.TrimSpace(string(out.Format)))
	if out.Alternatives == nil {
		out.Alternatives = []Alternative{}
	}
	for i, alt := range out.Alternatives {
		out.Alternatives[i].Letter = strings.TrimSpace(alt.Letter)
		out.Alternatives[i].Text = strings.TrimSpace(alt.Text)
	}
	for i, formula := range out.Formulas {
		out.Formulas[i] = strings.TrimSpace(formula)
	}
	return out
}

// Clone returns a deep copy of q. Mutating the copy's slices never
// affects the original.
func (q Question) Clone() Question {
	out := q
	if q.Alternatives != nil {
		out.Alternatives = append([]Alternative(nil), q.Alternatives...)
	}
	if q.Formulas != nil {
		out.Formulas = append([]string(nil), q.Formulas...)
	}
	if q.Images != nil {
		out.Images = append([]ImageRef(nil), q.Images...)
	}
	return out
}

// Equal reports whether two questions carry the same data. Nil and
// empty slices compare as equal.
func (q Question) Equal(other Question) bool {
	if q.Number != other.Number ||
		q.Text != other.Text ||
		q.Instruction != other.Instruction ||
		q.Subject != other.Subject ||
		q.ExamType != other.ExamType ||
		q.IssueDate != other.IssueDate ||
		q.Difficulty != other.Difficulty ||
		q.Format != other.Format {
		return false
	}
	if len(q.Alternatives) != len(other.Alternatives) {
		return false
	}
	for i := range q.Alternatives {
		if q.Alternatives[i] != other.Alternatives[i] {
			return false
		}
	}
	if len(q.Formulas) != len(other.Formulas) {
		return false
	}
	for i := range q.Formulas {
		if q.Formulas[i] != other.Formulas[i] {
			return false
		}
	}
	if len(q.Images) != len(other.Images) {
		return false
	}
	for i := range q.Images {
		if q.Images[i] != other.Images[i] {
			return false
		}
	}
	return true
}
