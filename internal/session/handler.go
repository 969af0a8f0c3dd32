package session

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
	"github.com/saulo-duarte/quiz-wizard/internal/auth"
	"github.com/saulo-duarte/quiz-wizard/internal/config"
)

type Handler struct {
	service      Service
	tokenTTL     time.Duration
	secureCookie bool
}

func NewHandler(s Service, tokenTTL time.Duration, secureCookie bool) *Handler {
	return &Handler{service: s, tokenTTL: tokenTTL, secureCookie: secureCookie}
}

// CreateSession godoc
// @Summary      Open a quiz session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSessionRequest  false  "Initial configuration and input mode"
// @Success      201      {object}  CreateSessionResponse
// @Failure      400      {string}  string
// @Router       /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := auth.GenerateJWT(sess.ID.String(), h.tokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	auth.SetSessionCookie(w, token, h.tokenTTL, h.secureCookie)

	config.JSON(w, http.StatusCreated, CreateSessionResponse{
		Session: h.service.View(sess),
		Token:   token,
	})
}

// GetSession godoc
// @Summary      Current session view
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  SessionView
// @Failure      401  {string}  string
// @Failure      404  {string}  string
// @Router       /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	sess, err := h.service.Get(r.Context(), id)
	h.respond(w, r, sess, err)
}

// UpdateConfig godoc
// @Summary      Replace the quiz configuration
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "Session ID"
// @Param        request  body      UpdateConfigRequest  true  "New configuration"
// @Success      200      {object}  SessionView
// @Failure      400      {string}  string
// @Router       /sessions/{id}/config [put]
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sess, err := h.service.UpdateConfig(r.Context(), id, req)
	h.respond(w, r, sess, err)
}

// GenerateQuiz godoc
// @Summary      Generate a quiz and load it into the session
// @Description  Omitted config and mode fall back to the session's current values.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                  true  "Session ID"
// @Param        request  body      aiquiz.QuestionRequest  true  "Content and options"
// @Success      200      {object}  SessionView
// @Failure      400      {string}  string
// @Failure      409      {string}  string
// @Failure      502      {string}  string
// @Router       /sessions/{id}/quiz [post]
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req aiquiz.QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sess, err := h.service.Generate(r.Context(), id, req)
	h.respond(w, r, sess, err)
}

// SelectOption godoc
// @Summary      Answer the current question
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string         true  "Session ID"
// @Param        request  body      OptionRequest  true  "Chosen option index"
// @Success      200      {object}  SessionView
// @Failure      400      {string}  string
// @Failure      409      {string}  string
// @Router       /sessions/{id}/answers [post]
func (h *Handler) SelectOption(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	option, ok := decodeOption(w, r)
	if !ok {
		return
	}
	sess, err := h.service.Select(r.Context(), id, option)
	h.respond(w, r, sess, err)
}

// Next godoc
// @Summary      Advance to the next question or the results
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  SessionView
// @Failure      409  {string}  string
// @Router       /sessions/{id}/next [post]
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	sess, err := h.service.Next(r.Context(), id)
	h.respond(w, r, sess, err)
}

// Prev godoc
// @Summary      Go back one question
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  SessionView
// @Failure      409  {string}  string
// @Router       /sessions/{id}/prev [post]
func (h *Handler) Prev(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	sess, err := h.service.Prev(r.Context(), id)
	h.respond(w, r, sess, err)
}

// Explain godoc
// @Summary      Explain one option of the answered current question
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string         true  "Session ID"
// @Param        request  body      OptionRequest  true  "Option to explain"
// @Success      200      {object}  ExplainResponse
// @Failure      400      {string}  string
// @Failure      409      {string}  string
// @Router       /sessions/{id}/explanations [post]
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	option, ok := decodeOption(w, r)
	if !ok {
		return
	}
	resp, err := h.service.Explain(r.Context(), id, option)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

// Result godoc
// @Summary      Score and missed questions of a finished quiz
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  Result
// @Failure      409  {string}  string
// @Router       /sessions/{id}/result [get]
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	res, err := h.service.Result(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, res)
}

// Reset godoc
// @Summary      Discard the quiz and return to setup
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  SessionView
// @Router       /sessions/{id}/reset [post]
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	sess, err := h.service.Reset(r.Context(), id)
	h.respond(w, r, sess, err)
}

// DeleteSession godoc
// @Summary      Close the session
// @Tags         sessions
// @Security     BearerAuth
// @Param        id   path  string  true  "Session ID"
// @Success      204
// @Failure      404  {string}  string
// @Router       /sessions/{id} [delete]
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	auth.ClearSessionCookie(w, h.secureCookie)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, sess *Session, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, h.service.View(sess))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := ErrorStatus(err)
	log := config.WithContext(r.Context()).WithError(err)
	if status >= http.StatusInternalServerError {
		log.Error("Session request failed")
	} else {
		log.Debug("Session request rejected")
	}
	http.Error(w, msg, status)
}

// ErrorStatus maps session and generation errors to an HTTP status and message.
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, ErrOptionOutOfRange), errors.Is(err, ErrInvalidMode):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrGenerationPending),
		errors.Is(err, ErrNoQuiz),
		errors.Is(err, ErrNotInProgress),
		errors.Is(err, ErrNotFinished),
		errors.Is(err, ErrNotAnswered):
		return http.StatusConflict, err.Error()
	case errors.Is(err, ErrEmptyQuiz):
		return http.StatusBadGateway, aiquiz.MsgGenerateFailed
	default:
		return aiquiz.ErrorStatus(err)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func decodeOption(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req OptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Option == nil {
		http.Error(w, "option is required", http.StatusBadRequest)
		return 0, false
	}
	return *req.Option, true
}
