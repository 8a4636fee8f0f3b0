// Manual smoke test: grades two sample answers against a live inference
// backend and prints the results. Run it after pointing LLM_URL at a local
// Ollama instance.
package main

import (
	"log/slog"
	"os"

	"github.com/frqgrade/backend/internal/grader"
	"github.com/frqgrade/backend/internal/infrastructure/config"
	"github.com/frqgrade/backend/internal/service"
	"github.com/frqgrade/backend/internal/simulation"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	llm := grader.NewOllamaGrader(cfg.LLMURL, cfg.LLMModel, grader.Options{
		Temperature: cfg.LLMTemperature,
		Seed:        cfg.LLMSeed,
		MaxTokens:   cfg.LLMMaxTokens,
		Timeout:     cfg.LLMTimeout,
	})
	svc := service.NewGradingService(llm, logger)

	simulation.Run(svc)
}
