package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quiz-wizard/internal/config"
	"github.com/saulo-duarte/quiz-wizard/internal/observability"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(settings *config.Settings) *AIQuizContainer {
	provider := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:     settings.GeminiAPIKey,
		BaseURL:    settings.GeminiBaseURL,
		HTTPClient: observability.NewHTTPClient(settings.GeminiTimeout),
	})
	service := NewService(provider, Models{
		Quiz:    settings.GeminiQuizModel,
		Explain: settings.GeminiExplainModel,
	})
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
