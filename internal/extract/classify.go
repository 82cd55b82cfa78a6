package extract

import (
	"regexp"
	"unicode/utf8"

	"stooda/internal/question"
)

var (
	trueFalsePattern   = regexp.MustCompile(`\([VF]\)`)
	calculationPattern = regexp.MustCompile(`[∫∑∏√±×÷≤≥≠∞]|frac|sqrt|\^`)
)

// readingLength is the statement size past which a question counts as
// text interpretation.
const readingLength = 800

// classifyFormat guesses how a question is answered from its body:
// "(V)"/"(F)" marks mean true/false, math symbols mean calculation,
// very long bodies mean text interpretation, anything else is plain
// multiple choice.
func classifyFormat(body string) question.Format {
	switch {
	case trueFalsePattern.MatchString(body):
		return question.FormatTrueFalse
	case calculationPattern.MatchString(body):
		return question.FormatCalculation
	case utf8.RuneCountInString(body) > readingLength:
		return question.FormatReading
	}
	return question.FormatMultipleChoice
}
