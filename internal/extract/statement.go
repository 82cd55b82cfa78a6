package extract

import (
	"regexp"
	"strings"
)

var (
	instructionMarker  = regexp.MustCompile(`(?:Instrução|INSTRUÇÃO):`)
	instructionPattern = regexp.MustCompile(`(?s)(?:Instrução|INSTRUÇÃO):\s*(.+?)(?:\n\(|$)`)
	statementPattern   = regexp.MustCompile(`(?s)^(.+?)\n\s*\([A-E]\)`)
	lineRefPattern     = regexp.MustCompile(`l\.\s*\d+`)
)

// extractInstruction pulls the shared "Instrução:" preamble out of a
// question body, or returns "" when there is none.
func extractInstruction(body string) string {
	match := instructionPattern.FindStringSubmatch(body)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// extractStatement returns the question statement: the text before the
// first alternative, with any instruction block and line references
// ("l. 12") removed. When no alternative follows, the whole cleaned
// body is the statement.
func extractStatement(body string) string {
	cleaned := removeInstructions(body)
	match := statementPattern.FindStringSubmatch(cleaned)
	if match == nil {
		return strings.TrimSpace(cleaned)
	}
	statement := strings.TrimSpace(match[1])
	return lineRefPattern.ReplaceAllString(statement, "")
}

// removeInstructions strips every instruction block, keeping the
// "\n(" boundary so the statement split still finds the first
// alternative.
func removeInstructions(body string) string {
	for {
		loc := instructionMarker.FindStringIndex(body)
		if loc == nil {
			return body
		}
		rest := body[loc[1]:]
		stop := strings.Index(rest, "\n(")
		if stop < 0 {
			stop = len(rest)
		}
		body = body[:loc[0]] + rest[stop:]
	}
}
