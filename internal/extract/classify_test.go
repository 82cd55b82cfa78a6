package extract

import (
	"strings"
	"testing"

	"stooda/internal/question"
)

// TestClassifyFormat verifies each format signal in priority order.
func TestClassifyFormat(t *testing.T) {
	cases := []struct {
		name string
		body string
		want question.Format
	}{
		{"true false", "Marque (V) para verdadeiro e (F) para falso.", question.FormatTrueFalse},
		{"calculation symbol", "Calcule ∫ f(x) dx no intervalo.", question.FormatCalculation},
		{"calculation caret", "Determine o valor de x^2 + 1.", question.FormatCalculation},
		{"reading", strings.Repeat("palavra ", 120), question.FormatReading},
		{"multiple choice", "Assinale a alternativa correta.", question.FormatMultipleChoice},
	}
	for _, tc := range cases {
		if got := classifyFormat(tc.body); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

// TestClassifyFormatPrecedence verifies true/false marks win over math
// symbols.
func TestClassifyFormatPrecedence(t *testing.T) {
	body := "Julgue (V) ou (F): x^2 cresce mais rápido que x."
	if got := classifyFormat(body); got != question.FormatTrueFalse {
		t.Fatalf("got %q, want %q", got, question.FormatTrueFalse)
	}
}
