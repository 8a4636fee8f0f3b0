package grader_test

import (
	"strings"
	"testing"

	"github.com/frqgrade/backend/internal/grader"
)

func TestBuildGradingPrompt_EmbedsAllInputs(t *testing.T) {
	question := "Explain how natural selection leads to evolution."
	rubric := "Mechanism (4 points): differential survival and reproduction."
	response := "Organisms with helpful traits reproduce more."

	prompt := grader.BuildGradingPrompt(question, rubric, response, 10)

	for _, want := range []string{question, rubric, response} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing input %q", want)
		}
	}
}

func TestBuildGradingPrompt_StatesScoreBounds(t *testing.T) {
	prompt := grader.BuildGradingPrompt("q", "r", "a", 10)

	if !strings.Contains(prompt, "between 0 and 10") {
		t.Error("prompt should state the score bounds")
	}
	if !strings.Contains(prompt, "10 points total") {
		t.Error("prompt should state the rubric total")
	}
}

func TestBuildGradingPrompt_FractionalMaxPoints(t *testing.T) {
	prompt := grader.BuildGradingPrompt("q", "r", "a", 7.5)

	if !strings.Contains(prompt, "7.5") {
		t.Error("prompt should render fractional max points without trailing zeros")
	}
	if strings.Contains(prompt, "7.500000") {
		t.Error("prompt should not use raw float formatting")
	}
}

func TestBuildGradingPrompt_EndsWithSchema(t *testing.T) {
	prompt := grader.BuildGradingPrompt("q", "r", "a", 10)

	for _, field := range []string{`"score"`, `"feedback"`, `"rubric_alignment"`} {
		if !strings.Contains(prompt, field) {
			t.Errorf("prompt missing schema field %s", field)
		}
	}

	// The schema is the last thing the model sees
	idx := strings.LastIndex(prompt, `"rubric_alignment"`)
	if idx == -1 || idx < len(prompt)/2 {
		t.Error("expected the JSON schema near the end of the prompt")
	}
}

func TestBuildGradingPrompt_Deterministic(t *testing.T) {
	a := grader.BuildGradingPrompt("q", "r", "a", 10)
	b := grader.BuildGradingPrompt("q", "r", "a", 10)

	if a != b {
		t.Error("identical inputs must produce identical prompts")
	}
}
