package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/quiz-wizard/internal/config"
)

// User-facing messages for the generation failure kinds.
const (
	MsgEmptyContent   = "Please provide content or a topic."
	MsgNoCandidate    = "AI returned an empty or error response. Check Quota or Key."
	MsgGenerateFailed = "Failed to generate quiz."
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestions godoc
// @Summary      Generate questions without a session
// @Tags         ai-quiz
// @Accept       json
// @Produce      json
// @Param        request  body      QuestionRequest  true  "Content, mode and configuration"
// @Success      201      {object}  QuestionResponse
// @Failure      400      {string}  string
// @Failure      502      {string}  string
// @Router       /ai-quiz [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		status, msg := ErrorStatus(err)
		if status >= http.StatusInternalServerError {
			log.WithError(err).Error("Failed to generate questions")
		}
		http.Error(w, msg, status)
		return
	}

	config.JSON(w, http.StatusCreated, QuestionResponse{Questions: questions})
}

// ErrorStatus maps generation errors to an HTTP status and the message shown to the user.
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrEmptyContent):
		return http.StatusBadRequest, MsgEmptyContent
	case errors.Is(err, ErrInvalidConfig):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrNoCandidate):
		return http.StatusBadGateway, MsgNoCandidate
	case errors.Is(err, ErrDecode), errors.Is(err, ErrGeneration):
		return http.StatusBadGateway, MsgGenerateFailed
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
