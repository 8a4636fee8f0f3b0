package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Inference backend (read once at startup, immutable afterwards)
	LLMURL         string        // OpenAI-compatible endpoint, e.g. "http://localhost:11434"
	LLMModel       string        // model name, e.g. "llama3.1:8b"
	LLMTimeout     time.Duration // bound on a single outbound inference call
	LLMMaxTokens   int           // cap on generated tokens
	LLMTemperature float64       // kept low so grading stays deterministic
	LLMSeed        int           // fixed sampling seed, same reason
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := fromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// fromEnv reads every variable and reports the first malformed one.
// Split from Load so the parsing paths stay testable in-process.
func fromEnv() (*Config, error) {
	serverAddress, err := requireEnv("SERVER_ADDRESS")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := requireDuration("SHUTDOWN_TIMEOUT")
	if err != nil {
		return nil, err
	}
	llmTimeout, err := getenvDuration("LLM_TIMEOUT", 120*time.Second)
	if err != nil {
		return nil, err
	}
	llmMaxTokens, err := getenvInt("LLM_MAX_TOKENS", 1024)
	if err != nil {
		return nil, err
	}
	llmTemperature, err := getenvFloat("LLM_TEMPERATURE", 0.1)
	if err != nil {
		return nil, err
	}
	llmSeed, err := getenvInt("LLM_SEED", 42)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerAddress:   serverAddress,
		ShutdownTimeout: shutdownTimeout,
		LLMURL:          getenvDefault("LLM_URL", "http://localhost:11434"),
		LLMModel:        getenvDefault("LLM_MODEL", "llama3.1:8b"),
		LLMTimeout:      llmTimeout,
		LLMMaxTokens:    llmMaxTokens,
		LLMTemperature:  llmTemperature,
		LLMSeed:         llmSeed,
	}, nil
}

func requireEnv(k string) (string, error) {
	v := os.Getenv(k)
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", k)
	}
	return v, nil
}

func requireDuration(k string) (time.Duration, error) {
	v, err := requireEnv(k)
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a valid duration: %v", k, v, err)
	}
	return d, nil
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(k string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a valid duration: %v", k, v, err)
	}
	return d, nil
}

func getenvInt(k string, fallback int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a valid integer: %v", k, v, err)
	}
	return n, nil
}

func getenvFloat(k string, fallback float64) (float64, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a valid number: %v", k, v, err)
	}
	return f, nil
}
