package grader

import (
	"fmt"
	"strconv"
)

// ============================================================================
// Prompt builder — kept short and directive for small (4-8B) models.
//
// Design principles:
//   - Embed the rubric verbatim; the model anchors its scoring on it.
//   - Spell out the numeric bounds so clamping is the exception, not the rule.
//   - Always end with the JSON schema so it's the last thing the model sees.
//   - Use /no_think where supported to suppress chain-of-thought tokens.
// ============================================================================

// BuildGradingPrompt assembles the grading instruction for one free-response
// answer. Pure string templating: all inputs are treated as opaque text and
// nothing is validated here.
func BuildGradingPrompt(questionPrompt, rubric, studentResponse string, maxPoints float64) string {
	points := formatPoints(maxPoints)

	return fmt.Sprintf(`/no_think
You are grading a free-response exam answer. Score the student's response against the rubric.

RULES:
- Award points only for what the response actually demonstrates.
- The score must be a number between 0 and %s.
- For each rubric criterion, report the fraction of its points the response earned as a number between 0 and 1.
- Keep the feedback concise and specific to this response.

QUESTION:
%s

RUBRIC (%s points total):
%s

STUDENT'S RESPONSE:
%s

Respond with ONLY this JSON — no explanation, no markdown:
{"score": <number 0-%s>, "feedback": "<text>", "rubric_alignment": {"<criterion name>": <number 0-1>, ...}}`,
		points, questionPrompt, points, rubric, studentResponse, points)
}

// formatPoints renders a point value without trailing zeros ("10", "7.5").
func formatPoints(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
