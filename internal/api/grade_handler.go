package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/frqgrade/backend/internal/grader"
	"github.com/frqgrade/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type GradeRequest struct {
	StudentResponse string  `json:"student_response" example:"Natural selection favors individuals whose traits improve survival..."`
	Rubric          string  `json:"rubric" example:"Mechanism of selection (4 points): ..."`
	QuestionPrompt  string  `json:"question_prompt" example:"Explain how natural selection leads to evolution."`
	MaxPoints       float64 `json:"max_points" example:"10"`
	QuestionNumber  string  `json:"question_number,omitempty" example:"Q1"`
}

func (r *GradeRequest) Validate() error {
	if strings.TrimSpace(r.StudentResponse) == "" {
		return errors.New("student_response is required")
	}
	if strings.TrimSpace(r.Rubric) == "" {
		return errors.New("rubric is required")
	}
	if strings.TrimSpace(r.QuestionPrompt) == "" {
		return errors.New("question_prompt is required")
	}
	if r.MaxPoints <= 0 {
		return errors.New("max_points must be greater than zero")
	}
	return nil
}

type GradeResponse struct {
	Score           float64            `json:"score" example:"8"`
	MaxPoints       float64            `json:"max_points" example:"10"`
	Percentage      float64            `json:"percentage" example:"80"`
	Feedback        string             `json:"feedback" example:"Covers the mechanism and variation; allele frequency change is only implied."`
	RubricAlignment map[string]float64 `json:"rubric_alignment"`
	Timestamp       time.Time          `json:"timestamp"`
	QuestionNumber  string             `json:"question_number,omitempty" example:"Q1"`
}

// BatchGradeItem is one positional entry in a batch response: either a
// result or an error, never both.
type BatchGradeItem struct {
	Result *GradeResponse `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func toGradeResponse(res *service.GradeResult) *GradeResponse {
	return &GradeResponse{
		Score:           res.Score,
		MaxPoints:       res.MaxPoints,
		Percentage:      res.Percentage,
		Feedback:        res.Feedback,
		RubricAlignment: res.RubricAlignment,
		Timestamp:       res.Timestamp,
		QuestionNumber:  res.QuestionNumber,
	}
}

func (r *GradeRequest) toService() service.GradeRequest {
	return service.GradeRequest{
		StudentResponse: r.StudentResponse,
		Rubric:          r.Rubric,
		QuestionPrompt:  r.QuestionPrompt,
		MaxPoints:       r.MaxPoints,
		QuestionNumber:  r.QuestionNumber,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// grade scores a single free-response answer.
// @Summary      Grade a free-response answer
// @Description  Build a grading prompt from the rubric and question, send it to the inference backend, and return the parsed score with feedback.
// @Tags         Grading
// @Accept       json
// @Produce      json
// @Param        request  body      GradeRequest  true  "Answer, rubric, and question metadata"
// @Success      200      {object}  GradeResponse
// @Failure      400      {object}  ErrorResponse  "malformed JSON body"
// @Failure      422      {object}  ErrorResponse  "missing or invalid field"
// @Failure      503      {object}  ErrorResponse  "inference backend unreachable"
// @Router       /grade [post]
func (h *Handler) grade(w http.ResponseWriter, r *http.Request) {
	var req GradeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := h.grading.Grade(r.Context(), req.toService())
	if err != nil {
		if errors.Is(err, grader.ErrUnavailable) {
			errorJSON(w, http.StatusServiceUnavailable, "inference backend unreachable")
			return
		}
		h.logger.Error("grade failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, toGradeResponse(result))
}

// gradeBatch scores an ordered list of answers, one at a time.
// @Summary      Grade a batch of answers
// @Description  Process each request sequentially in input order. A failing item becomes an error entry at its position; the rest of the batch still completes.
// @Tags         Grading
// @Accept       json
// @Produce      json
// @Param        requests  body      []GradeRequest  true  "Ordered grading requests"
// @Success      200       {array}   BatchGradeItem
// @Failure      400       {object}  ErrorResponse  "malformed JSON body"
// @Router       /grade/batch [post]
func (h *Handler) gradeBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []GradeRequest
	if !decodeJSON(w, r, &reqs) {
		return
	}

	// Invalid items turn into error entries here; everything else goes to
	// the service's sequential batch. Output position i always corresponds
	// to input position i.
	items := make([]BatchGradeItem, len(reqs))
	valid := make([]service.GradeRequest, 0, len(reqs))
	positions := make([]int, 0, len(reqs))
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			items[i] = BatchGradeItem{Error: err.Error()}
			continue
		}
		valid = append(valid, reqs[i].toService())
		positions = append(positions, i)
	}

	for j, out := range h.grading.GradeBatch(r.Context(), valid) {
		i := positions[j]
		switch {
		case out.Err == nil:
			items[i] = BatchGradeItem{Result: toGradeResponse(out.Result)}
		case errors.Is(out.Err, grader.ErrUnavailable):
			items[i] = BatchGradeItem{Error: "inference backend unreachable"}
		default:
			items[i] = BatchGradeItem{Error: "internal error"}
		}
	}

	respondJSON(w, http.StatusOK, items)
}
