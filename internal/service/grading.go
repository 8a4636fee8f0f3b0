// internal/service/grading.go
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/frqgrade/backend/internal/grader"
)

// GradeRequest contains everything needed to grade a single answer.
type GradeRequest struct {
	StudentResponse string
	Rubric          string
	QuestionPrompt  string
	MaxPoints       float64
	QuestionNumber  string // optional, echoed back on the result
}

// GradeResult is the full grading outcome for one request.
type GradeResult struct {
	Score           float64
	MaxPoints       float64
	Percentage      float64
	Feedback        string
	RubricAlignment map[string]float64
	Timestamp       time.Time
	QuestionNumber  string
}

// GradingService orchestrates one grading request: build the prompt, call
// the inference backend, parse the output. It holds no per-request state, so
// a single instance serves concurrent requests.
type GradingService struct {
	grader grader.Grader
	logger *slog.Logger
}

// NewGradingService creates a GradingService.
func NewGradingService(g grader.Grader, logger *slog.Logger) *GradingService {
	return &GradingService{
		grader: g,
		logger: logger,
	}
}

// Grade runs the full pipeline for one request. It fails only when the
// inference backend does: parse failures degrade to a zero-score result
// inside the parser and never surface as errors.
func (gs *GradingService) Grade(ctx context.Context, req GradeRequest) (*GradeResult, error) {
	prompt := grader.BuildGradingPrompt(req.QuestionPrompt, req.Rubric, req.StudentResponse, req.MaxPoints)

	raw, err := gs.grader.Generate(ctx, prompt)
	if err != nil {
		gs.logger.Error("grading error",
			"question_number", req.QuestionNumber,
			"error", err,
		)
		return nil, err
	}

	parsed := grader.ParseGradeResponse(raw, req.MaxPoints)

	// Request validation already excludes max_points <= 0; the guard stays
	// so a zero divisor can never slip through.
	percentage := 0.0
	if req.MaxPoints > 0 {
		percentage = parsed.Score / req.MaxPoints * 100
	}

	return &GradeResult{
		Score:           parsed.Score,
		MaxPoints:       req.MaxPoints,
		Percentage:      percentage,
		Feedback:        parsed.Feedback,
		RubricAlignment: parsed.RubricAlignment,
		Timestamp:       time.Now().UTC(),
		QuestionNumber:  req.QuestionNumber,
	}, nil
}

// BatchOutcome is one positional entry from GradeBatch: a result or the
// error that produced it, never both.
type BatchOutcome struct {
	Result *GradeResult
	Err    error
}

// GradeBatch grades requests strictly sequentially, in input order. A
// failing item is captured at its position and never aborts the rest of
// the batch; outcome i always corresponds to request i.
func (gs *GradingService) GradeBatch(ctx context.Context, reqs []GradeRequest) []BatchOutcome {
	outcomes := make([]BatchOutcome, len(reqs))
	for i := range reqs {
		result, err := gs.Grade(ctx, reqs[i])
		if err != nil {
			outcomes[i] = BatchOutcome{Err: err}
			continue
		}
		outcomes[i] = BatchOutcome{Result: result}
	}
	return outcomes
}
