package grader

import "encoding/json"

// ParseFailureFeedback is the fixed feedback text attached to the fallback
// result when the model's output can't be parsed.
const ParseFailureFeedback = "Unable to parse model output."

// GradeResult is the structured grade extracted from the model's output.
type GradeResult struct {
	Score           float64            `json:"score"`
	Feedback        string             `json:"feedback"`
	RubricAlignment map[string]float64 `json:"rubric_alignment"`
}

// ParseGradeResponse extracts a grade from raw model output. It never fails:
// when no usable JSON is found (or the score field is missing or malformed)
// it returns the zero-score fallback with explanatory feedback. The model is
// untrusted, so out-of-range scores are clamped into [0, maxPoints] and
// alignment weights into [0, 1] rather than rejected.
func ParseGradeResponse(raw string, maxPoints float64) GradeResult {
	fallback := GradeResult{
		Score:           0,
		Feedback:        ParseFailureFeedback,
		RubricAlignment: map[string]float64{},
	}

	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return fallback
	}

	// Decode field by field so one malformed field doesn't throw away the
	// rest. Only the score is required; everything else has a default.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &fields); err != nil {
		return fallback
	}

	scoreRaw, ok := fields["score"]
	if !ok {
		return fallback
	}
	var score float64
	if err := json.Unmarshal(scoreRaw, &score); err != nil {
		return fallback
	}

	result := GradeResult{
		Score:           clamp(score, 0, maxPoints),
		RubricAlignment: map[string]float64{},
	}

	if feedbackRaw, ok := fields["feedback"]; ok {
		// Default empty string on type mismatch
		_ = json.Unmarshal(feedbackRaw, &result.Feedback)
	}

	if alignmentRaw, ok := fields["rubric_alignment"]; ok {
		var alignment map[string]float64
		if err := json.Unmarshal(alignmentRaw, &alignment); err == nil {
			for criterion, weight := range alignment {
				result.RubricAlignment[criterion] = clamp(weight, 0, 1)
			}
		}
	}

	return result
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// extractJSON finds the outermost JSON object in a string.
// It handles nested braces correctly and skips braces inside quoted strings,
// so commentary the model prepends or appends around the object is ignored.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
