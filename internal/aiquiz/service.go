package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saulo-duarte/quiz-wizard/internal/config"
	"github.com/saulo-duarte/quiz-wizard/internal/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error)
	GenerateQuiz(ctx context.Context, prompt string) ([]Question, error)
	ExplainAnswer(ctx context.Context, q Question, selectedOption string, isCorrect bool) string
}

type Models struct {
	Quiz    string
	Explain string
}

type service struct {
	provider Provider
	models   Models
}

func NewService(provider Provider, models Models) Service {
	return &service{provider: provider, models: models}
}

var tracer = observability.Tracer("github.com/saulo-duarte/quiz-wizard/internal/aiquiz")

func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error) {
	cfg, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	return s.GenerateQuiz(ctx, BuildQuizPrompt(cfg, req.Content, req.WeakPoints))
}

func (s *service) GenerateQuiz(ctx context.Context, prompt string) ([]Question, error) {
	ctx, span := tracer.Start(ctx, "aiquiz.GenerateQuiz")
	defer span.End()
	log := config.WithContext(ctx)

	start := time.Now()
	raw, err := s.provider.SendPrompt(ctx, s.models.Quiz, prompt)
	if err != nil {
		if !errors.Is(err, ErrNoCandidate) && !errors.Is(err, ErrGeneration) {
			err = fmt.Errorf("%w: %v", ErrGeneration, err)
		}
		observability.ObserveLLMCall("generate", outcomeOf(err), time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	questions, err := DecodeQuestions(raw)
	if err != nil {
		observability.ObserveLLMCall("generate", observability.OutcomeDecode, time.Since(start))
		log.WithError(err).Errorf("[AIQUIZ] Failed to decode model reply:\n%s", raw)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	observability.ObserveLLMCall("generate", observability.OutcomeSuccess, time.Since(start))
	observability.RecordQuestions(len(questions))
	span.SetAttributes(attribute.Int("quiz.questions", len(questions)))
	log.Infof("[AIQUIZ] Generated %d questions", len(questions))
	return questions, nil
}

// ExplainAnswer is best effort: failures degrade to a fixed fallback text.
func (s *service) ExplainAnswer(ctx context.Context, q Question, selectedOption string, isCorrect bool) string {
	ctx, span := tracer.Start(ctx, "aiquiz.ExplainAnswer")
	defer span.End()

	start := time.Now()
	text, err := s.provider.SendPrompt(ctx, s.models.Explain, BuildExplanationPrompt(q, selectedOption, isCorrect))
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Explanation request failed, returning fallback")
		span.RecordError(err)
		observability.ObserveLLMCall("explain", observability.OutcomeFallback, time.Since(start))
		if errors.Is(err, ErrNoCandidate) {
			return FallbackNoExplanation
		}
		return FallbackExplanationFailed
	}

	observability.ObserveLLMCall("explain", observability.OutcomeSuccess, time.Since(start))
	return text
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrNoCandidate):
		return observability.OutcomeNoCandidate
	case errors.Is(err, ErrDecode):
		return observability.OutcomeDecode
	default:
		return observability.OutcomeTransport
	}
}
