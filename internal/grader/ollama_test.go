package grader_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/frqgrade/backend/internal/grader"
)

func testOptions() grader.Options {
	return grader.Options{
		Temperature: 0.1,
		Seed:        42,
		MaxTokens:   256,
		Timeout:     2 * time.Second,
	}
}

func chatCompletion(content string) string {
	return `{"choices": [{"message": {"content": ` + jsonQuote(content) + `}}]}`
}

func jsonQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerate_ReturnsModelContent(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		w.Write([]byte(chatCompletion(`{"score": 8}`)))
	}))
	defer srv.Close()

	g := grader.NewOllamaGrader(srv.URL, "test-model", testOptions())

	out, err := g.Generate(context.Background(), "grade this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"score": 8}` {
		t.Errorf("unexpected content: %q", out)
	}

	// Fixed sampling configuration must reach the backend
	if gotBody["model"] != "test-model" {
		t.Errorf("expected model test-model, got %v", gotBody["model"])
	}
	if gotBody["temperature"] != 0.1 {
		t.Errorf("expected temperature 0.1, got %v", gotBody["temperature"])
	}
	if gotBody["seed"] != float64(42) {
		t.Errorf("expected seed 42, got %v", gotBody["seed"])
	}
	if gotBody["max_tokens"] != float64(256) {
		t.Errorf("expected max_tokens 256, got %v", gotBody["max_tokens"])
	}
}

func TestGenerate_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := grader.NewOllamaGrader(srv.URL, "test-model", testOptions())

	_, err := g.Generate(context.Background(), "grade this")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, grader.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestGenerate_ConnectionFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	g := grader.NewOllamaGrader(srv.URL, "test-model", testOptions())

	_, err := g.Generate(context.Background(), "grade this")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, grader.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestGenerate_EmptyChoicesIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	g := grader.NewOllamaGrader(srv.URL, "test-model", testOptions())

	_, err := g.Generate(context.Background(), "grade this")
	if !errors.Is(err, grader.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestGenerate_CancelledContextStopsCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	g := grader.NewOllamaGrader(srv.URL, "test-model", testOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, "grade this")
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestAvailable_TrueWhenModelsEndpointResponds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	g := grader.NewOllamaGrader(srv.URL, "test-model", testOptions())

	if !g.Available(context.Background()) {
		t.Error("expected backend to be reported available")
	}
}

func TestAvailable_FalseWhenBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	g := grader.NewOllamaGrader(srv.URL, "test-model", testOptions())

	if g.Available(context.Background()) {
		t.Error("expected backend to be reported unavailable")
	}
}
