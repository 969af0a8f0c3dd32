package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
	"github.com/saulo-duarte/quiz-wizard/internal/config"
	"github.com/saulo-duarte/quiz-wizard/internal/observability"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var (
	ErrGenerationPending = errors.New("a quiz is already being generated for this session")
	ErrInvalidMode       = errors.New("mode must be text or topic")
)

type Service interface {
	Create(ctx context.Context, req CreateSessionRequest) (*Session, error)
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	UpdateConfig(ctx context.Context, id uuid.UUID, req UpdateConfigRequest) (*Session, error)
	Generate(ctx context.Context, id uuid.UUID, req aiquiz.QuestionRequest) (*Session, error)
	Select(ctx context.Context, id uuid.UUID, option int) (*Session, error)
	Next(ctx context.Context, id uuid.UUID) (*Session, error)
	Prev(ctx context.Context, id uuid.UUID) (*Session, error)
	Explain(ctx context.Context, id uuid.UUID, option int) (*ExplainResponse, error)
	Result(ctx context.Context, id uuid.UUID) (*Result, error)
	Reset(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	View(s *Session) SessionView
}

type sessionService struct {
	store    Store
	quiz     aiquiz.Service
	pending  *pendingSet
	generate singleflight.Group
	explain  singleflight.Group
	now      func() time.Time
}

func NewService(store Store, quiz aiquiz.Service) Service {
	return &sessionService{
		store:   store,
		quiz:    quiz,
		pending: newPendingSet(),
		now:     time.Now,
	}
}

func validMode(mode aiquiz.InputMode) bool {
	return mode == aiquiz.InputModeText || mode == aiquiz.InputModeTopic
}

func (s *sessionService) Create(ctx context.Context, req CreateSessionRequest) (*Session, error) {
	log := config.WithContext(ctx)

	cfg := aiquiz.DefaultConfig()
	if req.Config != nil {
		cfg = *req.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode := req.Mode
	if mode == "" {
		mode = aiquiz.InputModeText
	}
	if !validMode(mode) {
		return nil, ErrInvalidMode
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.New(),
		Config:    cfg,
		Mode:      mode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, sess); err != nil {
		log.WithError(err).Error("Failed to create session")
		return nil, err
	}

	observability.RecordSessionEvent("create")
	log.WithField("session_id", sess.ID).Info("Session created")
	return sess, nil
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.store.Get(ctx, id)
}

func (s *sessionService) UpdateConfig(ctx context.Context, id uuid.UUID, req UpdateConfigRequest) (*Session, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}
	if req.Mode != "" && !validMode(req.Mode) {
		return nil, ErrInvalidMode
	}

	return s.store.Update(ctx, id, func(sess *Session) error {
		sess.Config = req.Config
		if req.Mode != "" {
			sess.Mode = req.Mode
		}
		return nil
	})
}

// Generate builds a quiz for the session. On any failure the session is left as it was.
func (s *sessionService) Generate(ctx context.Context, id uuid.UUID, req aiquiz.QuestionRequest) (*Session, error) {
	log := config.WithContext(ctx).WithField("session_id", id)

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Config == nil {
		cfg := sess.Config
		req.Config = &cfg
	}
	if req.Mode == "" {
		req.Mode = sess.Mode
	}
	cfg, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	if !s.pending.beginGeneration(id) {
		return nil, ErrGenerationPending
	}
	defer s.pending.endGeneration(id)

	// Identical prompts from other sessions share this call; no single caller may cancel it.
	prompt := aiquiz.BuildQuizPrompt(cfg, req.Content, req.WeakPoints)
	shareable := context.WithoutCancel(ctx)
	v, err, shared := s.generate.Do(promptKey(prompt), func() (interface{}, error) {
		return s.quiz.GenerateQuiz(shareable, prompt)
	})
	if shared {
		observability.ObserveLLMCall("generate", observability.OutcomeDeduped, 0)
		log.Debug("Quiz generation shared with an identical in-flight request")
	}
	if err != nil {
		observability.RecordSessionEvent("generate_failed")
		log.WithError(err).Warn("Quiz generation failed, session left unchanged")
		return nil, err
	}
	questions := v.([]aiquiz.Question)

	updated, err := s.store.Update(ctx, id, func(sess *Session) error {
		next, err := Load(sess.State, questions)
		if err != nil {
			return err
		}
		sess.State = next
		sess.Config = cfg
		sess.Mode = req.Mode
		sess.Content = req.Content
		sess.WeakPoints = req.WeakPoints
		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.RecordSessionEvent("load")
	log.WithFields(logrus.Fields{
		"questions":  len(questions),
		"difficulty": cfg.Difficulty,
		"taxonomy":   cfg.TaxonomyLevel,
	}).Info("Quiz loaded into session")
	return updated, nil
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

// Select records the answer for the current question. Answering twice is a no-op.
func (s *sessionService) Select(ctx context.Context, id uuid.UUID, option int) (*Session, error) {
	updated, err := s.transition(ctx, id, "select", func(st State) (State, error) {
		return SelectOption(st, option)
	})
	if errors.Is(err, ErrAlreadyAnswered) {
		return s.store.Get(ctx, id)
	}
	return updated, err
}

func (s *sessionService) Next(ctx context.Context, id uuid.UUID) (*Session, error) {
	completed := false
	updated, err := s.transition(ctx, id, "advance", func(st State) (State, error) {
		next, err := Advance(st)
		completed = err == nil && !st.Finished() && next.Finished()
		return next, err
	})
	if completed {
		observability.RecordScore(Score(updated.State))
	}
	return updated, err
}

func (s *sessionService) Prev(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.transition(ctx, id, "retreat", Retreat)
}

func (s *sessionService) Reset(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.transition(ctx, id, "reset", func(st State) (State, error) {
		return Reset(st), nil
	})
}

func (s *sessionService) transition(ctx context.Context, id uuid.UUID, event string, reduce func(State) (State, error)) (*Session, error) {
	updated, err := s.store.Update(ctx, id, func(sess *Session) error {
		next, err := reduce(sess.State)
		if err != nil {
			return err
		}
		sess.State = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	observability.RecordSessionEvent(event)
	return updated, nil
}

// Explain asks for a justification of one option of the current, already answered
// question. Concurrent requests for the same option share one upstream call; a real
// explanation is cached only if the question is still on display when it arrives.
func (s *sessionService) Explain(ctx context.Context, id uuid.UUID, option int) (*ExplainResponse, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	st := sess.State
	q, ok := st.Current()
	if !ok {
		return nil, ErrNotInProgress
	}
	if option < 0 || option >= len(q.Options) {
		return nil, ErrOptionOutOfRange
	}
	if _, answered := st.Selection(st.CurrentIndex); !answered {
		return nil, ErrNotAnswered
	}

	questionIndex := st.CurrentIndex
	resp := &ExplainResponse{QuestionIndex: questionIndex, Option: option}
	if text, cached := st.Explanations[option]; cached {
		resp.Explanation = text
		return resp, nil
	}

	key := explainKey(id, questionIndex, option)
	shareable := context.WithoutCancel(ctx)
	s.pending.beginExplain(key)
	v, _, _ := s.explain.Do(key, func() (interface{}, error) {
		return s.quiz.ExplainAnswer(shareable, q, q.Options[option], option == q.CorrectIndex), nil
	})
	s.pending.endExplain(key)
	resp.Explanation = v.(string)

	// Fallback texts are shown but not cached so that asking again retries upstream.
	if aiquiz.IsFallback(resp.Explanation) {
		return resp, nil
	}
	_, err = s.store.Update(ctx, id, func(sess *Session) error {
		sess.State = CacheExplanation(sess.State, questionIndex, option, resp.Explanation)
		return nil
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to cache explanation")
	}
	return resp, nil
}

func (s *sessionService) Result(ctx context.Context, id uuid.UUID) (*Result, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := Summarize(sess.State)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *sessionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.pending.endGeneration(id)
	observability.RecordSessionEvent("delete")
	return nil
}

func (s *sessionService) View(sess *Session) SessionView {
	view := SessionView{
		ID:         sess.ID,
		Status:     sess.State.Status(),
		Config:     sess.Config,
		Mode:       sess.Mode,
		Generating: s.pending.isGenerating(sess.ID),
	}

	switch view.Status {
	case StatusInProgress:
		view.Question = s.questionView(sess)
	case StatusFinished:
		if res, err := Summarize(sess.State); err == nil {
			view.Result = &res
		}
	}
	return view
}

func (s *sessionService) questionView(sess *Session) *QuestionView {
	st := sess.State
	q, _ := st.Current()

	qv := &QuestionView{
		Index:             st.CurrentIndex,
		Total:             len(st.Quiz),
		Question:          q.Question,
		Options:           q.Options,
		BloomLevel:        q.BloomLevel,
		Bridge:            q.Bridge,
		ExplainingOptions: s.pending.explainingOptions(sess.ID, st.CurrentIndex, len(q.Options)),
		CanGoBack:         st.CurrentIndex > 0,
		IsLast:            st.CurrentIndex == len(st.Quiz)-1,
	}

	if selected, answered := st.Selection(st.CurrentIndex); answered {
		correctIndex := q.CorrectIndex
		isCorrect := selected == correctIndex
		qv.Answered = true
		qv.SelectedIndex = &selected
		qv.CorrectIndex = &correctIndex
		qv.IsCorrect = &isCorrect
		qv.Explanation = q.Explanation
		if len(st.Explanations) > 0 {
			qv.Explanations = st.Explanations
		}
	}
	return qv
}
