package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable marks failures caused by the inference backend being
// unreachable (connection refused, timeout, non-success status). Callers
// check it with errors.Is to map the failure to a 503.
var ErrUnavailable = errors.New("inference backend unavailable")

// GradeError is returned when a grading call fails so the caller can
// distinguish "backend unreachable" from anything else.
type GradeError struct {
	Reason  string
	Wrapped error
}

func (e *GradeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("grading failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("grading failed: %s", e.Reason)
}

func (e *GradeError) Unwrap() error {
	return e.Wrapped
}

// Options carries the fixed sampling configuration for every grading call.
// Low temperature and a pinned seed keep identical requests scoring
// identically on a deterministic backend.
type Options struct {
	Temperature float64
	Seed        int
	MaxTokens   int
	Timeout     time.Duration
}

// OllamaGrader grades answers by calling an OpenAI-compatible LLM endpoint
// (Ollama, LM Studio, vLLM, etc.).
type OllamaGrader struct {
	url    string // e.g. "http://localhost:11434"
	model  string // e.g. "llama3.1:8b"
	opts   Options
	client *http.Client // reused across calls
}

// Compile-time check: *OllamaGrader satisfies the Grader interface.
var _ Grader = (*OllamaGrader)(nil)

// NewOllamaGrader creates a grader that calls the given LLM endpoint.
func NewOllamaGrader(url, model string, opts Options) *OllamaGrader {
	if opts.Timeout <= 0 {
		opts.Timeout = 120 * time.Second
	}
	return &OllamaGrader{
		url:   url,
		model: model,
		opts:  opts,
		client: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

// ============================================================================
// Grader interface
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
	Seed        int          `json:"seed"`
	MaxTokens   int          `json:"max_tokens"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends a single request to the LLM and returns the raw text
// response. One attempt only: on failure the caller decides what happens
// next, nothing is retried here.
func (g *OllamaGrader) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := llmRequest{
		Model: g.model,
		Messages: []llmMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: g.opts.Temperature,
		Seed:        g.opts.Seed,
		MaxTokens:   g.opts.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &GradeError{Reason: "failed to marshal request", Wrapped: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &GradeError{Reason: "failed to create request", Wrapped: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &GradeError{Reason: fmt.Sprintf("LLM request failed: %v", err), Wrapped: ErrUnavailable}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &GradeError{Reason: fmt.Sprintf("LLM returned status %d", resp.StatusCode), Wrapped: ErrUnavailable}
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", &GradeError{Reason: "failed to decode LLM response", Wrapped: ErrUnavailable}
	}

	if len(llmResp.Choices) == 0 {
		return "", &GradeError{Reason: "LLM returned no choices", Wrapped: ErrUnavailable}
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", &GradeError{Reason: "LLM returned empty content", Wrapped: ErrUnavailable}
	}

	return content, nil
}

// Available probes the backend with a lightweight model-list request.
func (g *OllamaGrader) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url+"/v1/models", nil)
	if err != nil {
		return false
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
