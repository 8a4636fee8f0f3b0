package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/frqgrade/backend/internal/api"
	"github.com/frqgrade/backend/internal/grader"
	"github.com/frqgrade/backend/internal/infrastructure/config"
	"github.com/frqgrade/backend/internal/service"

	_ "github.com/frqgrade/backend/docs" // generated swagger docs
)

// @title           FRQ Grading API
// @version         1.0
// @description     Grade free-response exam answers against a rubric with a locally hosted language model.

// @host      localhost:8000
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	llm := grader.NewOllamaGrader(cfg.LLMURL, cfg.LLMModel, grader.Options{
		Temperature: cfg.LLMTemperature,
		Seed:        cfg.LLMSeed,
		MaxTokens:   cfg.LLMMaxTokens,
		Timeout:     cfg.LLMTimeout,
	})
	gradingSvc := service.NewGradingService(llm, logger)
	handler := api.NewHandler(gradingSvc, llm, cfg.LLMModel, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.LLMTimeout + 30*time.Second, // a grade response can't finish before the LLM does
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "model", cfg.LLMModel)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
