package aiquiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyContent  = errors.New("please provide content or a topic")
	ErrInvalidConfig = errors.New("invalid quiz configuration")
)

var validate = validator.New()

func (c QuizConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, describe(err))
	}
	return nil
}

// Normalize fills in defaults and checks the request. The returned config is the one
// the prompt is built from.
func (r QuestionRequest) Normalize() (QuizConfig, error) {
	if strings.TrimSpace(r.Content) == "" {
		return QuizConfig{}, ErrEmptyContent
	}
	if err := validate.Struct(r); err != nil {
		return QuizConfig{}, fmt.Errorf("%w: %s", ErrInvalidConfig, describe(err))
	}

	cfg := DefaultConfig()
	if r.Config != nil {
		cfg = *r.Config
	}
	if err := cfg.Validate(); err != nil {
		return QuizConfig{}, err
	}
	return cfg, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
	}
	return strings.Join(msgs, ", ")
}
