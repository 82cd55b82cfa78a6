package extract

import (
	"regexp"
	"strings"

	"stooda/internal/config"
	"stooda/internal/question"
)

// builtinSubjects maps UFRGS section headings to subjects. Order
// matters: the first matching keyword wins, so it mirrors the order
// headings appear in the exam booklet.
var builtinSubjects = []struct {
	keyword string
	subject question.Subject
}{
	{"PORTUGUÊS", question.SubjectPortuguese},
	{"LITERATURA", question.SubjectLiterature},
	{"MATEMÁTICA", question.SubjectMathematics},
	{"FÍSICA", question.SubjectPhysics},
	{"QUÍMICA", question.SubjectChemistry},
	{"HISTÓRIA", question.SubjectHistory},
	{"GEOGRAFIA", question.SubjectGeography},
	{"BIOLOGIA", question.SubjectBiology},
}

type subjectRule struct {
	subject question.Subject
	pattern *regexp.Regexp
}

// SubjectDetector tracks the discipline a page belongs to. Section
// headings appear once and apply to every following page, so the
// detector keeps the last heading it saw as the fallback.
type SubjectDetector struct {
	rules   []subjectRule
	current question.Subject
}

// NewSubjectDetector builds a detector from the built-in disciplines
// plus any extra rules from the config. Config rules are checked after
// the built-ins.
func NewSubjectDetector(extra []config.SubjectRule) *SubjectDetector {
	detector := &SubjectDetector{}
	for _, builtin := range builtinSubjects {
		detector.rules = append(detector.rules, subjectRule{
			subject: builtin.subject,
			pattern: keywordPattern(builtin.keyword),
		})
	}
	for _, rule := range extra {
		subject := question.Subject(strings.TrimSpace(rule.Name))
		for _, keyword := range rule.Keywords {
			keyword = strings.TrimSpace(keyword)
			if keyword == "" {
				continue
			}
			detector.rules = append(detector.rules, subjectRule{
				subject: subject,
				pattern: keywordPattern(keyword),
			})
		}
	}
	return detector
}

func keywordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// Observe scans a page for a section heading and updates the running
// subject when one is found.
func (detector *SubjectDetector) Observe(pageText string) {
	for _, rule := range detector.rules {
		if rule.pattern.MatchString(pageText) {
			detector.current = rule.subject
			return
		}
	}
}

// Current returns the running subject, which is empty before the first
// heading is seen.
func (detector *SubjectDetector) Current() question.Subject {
	return detector.current
}

// DetectIn returns the subject named in the given context, falling
// back to the running subject when the context names none.
func (detector *SubjectDetector) DetectIn(context string) question.Subject {
	for _, rule := range detector.rules {
		if rule.pattern.MatchString(context) {
			return rule.subject
		}
	}
	return detector.current
}
