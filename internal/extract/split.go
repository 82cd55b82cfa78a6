package extract

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

// questionStart matches "12. " at a line start, the way UFRGS numbers
// its questions. The body of a question runs from here to the next
// match.
var questionStart = regexp.MustCompile(`\n\s*(\d{1,3})\s*\.\s+`)

var pageMarker = regexp.MustCompile(`\[PAGINA:(\d+)\]`)

// rawQuestion is one numbered slice of the assembled exam text, before
// any field extraction.
type rawQuestion struct {
	number int
	body   string

	// page is the source page recovered from the context before the
	// question number, zero when no page marker was in range.
	page int

	// context is the text window preceding the question number, used
	// for subject and page recovery.
	context string
}

// splitQuestions cuts the assembled text at question numbers. Each
// body runs up to the next number, and the preceding contextWindow
// bytes are kept for marker recovery.
func splitQuestions(text string, contextWindow int) []rawQuestion {
	matches := questionStart.FindAllStringSubmatchIndex(text, -1)
	questions := make([]rawQuestion, 0, len(matches))
	for i, match := range matches {
		number, err := strconv.Atoi(text[match[2]:match[3]])
		if err != nil {
			continue
		}
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		contextStart := match[0] - contextWindow
		if contextStart < 0 {
			contextStart = 0
		}
		context := text[contextStart:match[0]]
		for len(context) > 0 && !utf8.RuneStart(context[0]) {
			context = context[1:]
		}

		page := 0
		if pm := pageMarker.FindStringSubmatch(context); pm != nil {
			if n, err := strconv.Atoi(pm[1]); err == nil {
				page = n
			}
		}

		questions = append(questions, rawQuestion{
			number:  number,
			body:    text[match[1]:end],
			page:    page,
			context: context,
		})
	}
	return questions
}
