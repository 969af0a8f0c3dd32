package aiquiz

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/saulo-duarte/quiz-wizard/internal/config"
	"google.golang.org/genai"
)

// Provider sends a single prompt to a text-generation model and returns the raw completion.
type Provider interface {
	SendPrompt(ctx context.Context, model, prompt string) (string, error)
}

type GeminiConfig struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

type geminiProvider struct {
	client  *genai.Client
	initErr error
}

// NewGeminiProvider never fails: a client that cannot be built surfaces its error on every
// SendPrompt call as ErrGeneration, the same way an invalid key does.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) Provider {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Gemini client unavailable, generation requests will fail")
		return &geminiProvider{initErr: err}
	}
	return &geminiProvider{client: client}
}

func (p *geminiProvider) SendPrompt(ctx context.Context, model, prompt string) (string, error) {
	log := config.WithContext(ctx).WithField("model", model)
	if p.initErr != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, p.initErr)
	}

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini generateContent call failed")
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	raw := candidateText(result)
	if raw == "" {
		log.Warn("Gemini response carried no completion candidate")
		return "", ErrNoCandidate
	}

	log.Debugf("[AIQUIZ] Raw Gemini reply:\n%s", raw)
	return raw, nil
}

func candidateText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 {
		return ""
	}
	cand := result.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}
