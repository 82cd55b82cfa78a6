package extract

import (
	"regexp"
	"strings"

	"stooda/internal/question"
)

// alternativeMarker matches "(A)" through "(F)". Only A through E
// start an alternative; F never does in UFRGS exams, but a stray "(F)"
// still terminates the option before it.
var alternativeMarker = regexp.MustCompile(`\(([A-F])\)`)

// parseAlternatives pulls the lettered options out of a question body
// in order. Each option's text runs to the next marker and has its
// whitespace collapsed to single spaces. Options with no text are
// dropped.
func parseAlternatives(body string) []question.Alternative {
	matches := alternativeMarker.FindAllStringSubmatchIndex(body, -1)
	var alternatives []question.Alternative
	for i, match := range matches {
		letter := body[match[2]:match[3]]
		if letter == "F" {
			continue
		}
		end := len(body)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		text := strings.Join(strings.Fields(body[match[1]:end]), " ")
		if text == "" {
			continue
		}
		alternatives = append(alternatives, question.Alternative{Letter: letter, Text: text})
	}
	return alternatives
}
