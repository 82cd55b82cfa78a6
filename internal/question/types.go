package question

// Question is a single exam question. Text, Subject, ExamType, IssueDate
// and Difficulty are required; everything else is optional enrichment
// produced by extraction.
type Question struct {
	// Number is the question's position in the source exam, when known.
	// Zero means the question was never numbered.
	Number int `json:"number,omitempty" yaml:"number,omitempty"`

	// Text is the question statement shown to the student.
	Text string `json:"text" yaml:"text"`

	// Instruction is shared preamble text ("Instrução: ...") that applies
	// to this question, when the source exam carries one.
	Instruction string `json:"instruction,omitempty" yaml:"instruction,omitempty"`

	// Alternatives holds the answer options in presentation order.
	// An empty list is valid: discursive questions have no alternatives.
	Alternatives []Alternative `json:"alternatives" yaml:"alternatives"`

	Subject    Subject    `json:"subject" yaml:"subject"`
	ExamType   ExamType   `json:"exam_type" yaml:"exam_type"`
	IssueDate  Date       `json:"issue_date" yaml:"issue_date"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`

	// Format classifies how the question is answered. Empty when the
	// source gave no signal.
	Format Format `json:"format,omitempty" yaml:"format,omitempty"`

	// Formulas lists mathematical expressions detected in the statement,
	// in first-seen order without duplicates.
	Formulas []string `json:"formulas,omitempty" yaml:"formulas,omitempty"`

	// Images references figures the statement depends on.
	Images []ImageRef `json:"images,omitempty" yaml:"images,omitempty"`
}

// Alternative is one answer option.
type Alternative struct {
	// Letter identifies the option, "A" through "E" in UFRGS exams.
	Letter string `json:"letter" yaml:"letter"`
	Text   string `json:"text" yaml:"text"`

	// Correct marks the answer key when it is known. Extraction leaves
	// it false; answer keys arrive separately, if at all.
	Correct bool `json:"correct,omitempty" yaml:"correct,omitempty"`
}

// ImageRef points at an extracted image file.
type ImageRef struct {
	// File is the bare file name, e.g. "pag3_img1.png".
	File string `json:"file" yaml:"file"`

	// Path is the file's location on disk relative to the bank, when the
	// image was written out.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Page is the 1-based source page the image came from.
	Page int `json:"page" yaml:"page"`

	// Format is the image encoding, e.g. "png" or "jpeg".
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}
