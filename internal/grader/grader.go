package grader

import "context"

// Grader produces a raw model completion for a grading prompt.
// Implementations may call an LLM or return canned results (for tests).
type Grader interface {
	// Generate sends the prompt to the model and returns its raw text output.
	Generate(ctx context.Context, prompt string) (string, error)

	// Available reports whether the inference backend is reachable.
	// It never returns an error; unreachable simply means false.
	Available(ctx context.Context) bool
}
