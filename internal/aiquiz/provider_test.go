package aiquiz_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
)

func geminiServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "models/test-model:generateContent") {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func candidate(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
}

func newTestProvider(srv *httptest.Server) aiquiz.Provider {
	return aiquiz.NewGeminiProvider(context.Background(), aiquiz.GeminiConfig{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
}

func TestGeminiProvider(t *testing.T) {
	t.Run("ReturnsCandidateText", func(t *testing.T) {
		srv := geminiServer(t, http.StatusOK, candidate(wellFormed))

		raw, err := newTestProvider(srv).SendPrompt(context.Background(), "test-model", "prompt")
		if err != nil {
			t.Fatalf("SendPrompt failed: %v", err)
		}
		if raw != wellFormed {
			t.Errorf("unexpected text %q", raw)
		}
	})

	t.Run("NoCandidate", func(t *testing.T) {
		srv := geminiServer(t, http.StatusOK, map[string]any{
			"promptFeedback": map[string]any{"blockReason": "SAFETY"},
		})

		_, err := newTestProvider(srv).SendPrompt(context.Background(), "test-model", "prompt")
		if !errors.Is(err, aiquiz.ErrNoCandidate) {
			t.Errorf("expected ErrNoCandidate, got %v", err)
		}
	})

	t.Run("APIError", func(t *testing.T) {
		srv := geminiServer(t, http.StatusForbidden, map[string]any{
			"error": map[string]any{"code": 403, "message": "API key not valid", "status": "PERMISSION_DENIED"},
		})

		_, err := newTestProvider(srv).SendPrompt(context.Background(), "test-model", "prompt")
		if !errors.Is(err, aiquiz.ErrGeneration) {
			t.Errorf("expected ErrGeneration, got %v", err)
		}
	})
}

func TestGeminiProviderEndToEnd(t *testing.T) {
	srv := geminiServer(t, http.StatusOK, candidate("Here is the quiz:\n"+wellFormed))
	svc := aiquiz.NewService(newTestProvider(srv), aiquiz.Models{Quiz: "test-model", Explain: "test-model"})

	questions, err := svc.GenerateQuestions(context.Background(), aiquiz.QuestionRequest{Content: "French geography"})
	if err != nil {
		t.Fatalf("GenerateQuestions failed: %v", err)
	}
	if len(questions) != 1 || questions[0].Question != "Capital of France?" {
		t.Errorf("unexpected questions %+v", questions)
	}
}
