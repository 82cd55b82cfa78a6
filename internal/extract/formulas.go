package extract

import "regexp"

// formulaPatterns cover the notations UFRGS exams use for math:
// powers, LaTeX fractions and roots, and integrals.
var formulaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[a-z]\^[0-9]`),
	regexp.MustCompile(`\\frac\{.+?\}\{.+?\}`),
	regexp.MustCompile(`\\sqrt\{.+?\}`),
	regexp.MustCompile(`∫.+?d[xyz]`),
}

// detectFormulas returns the formulas found in a question body,
// deduplicated in first-seen order.
func detectFormulas(body string) []string {
	var formulas []string
	seen := map[string]struct{}{}
	for _, pattern := range formulaPatterns {
		for _, match := range pattern.FindAllString(body, -1) {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			formulas = append(formulas, match)
		}
	}
	return formulas
}
