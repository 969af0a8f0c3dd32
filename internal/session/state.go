package session

import (
	"errors"
	"math"

	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// PassThreshold is the score from which a finished quiz counts as passed.
const PassThreshold = 70

var (
	ErrEmptyQuiz        = errors.New("quiz has no questions")
	ErrNoQuiz           = errors.New("no quiz loaded")
	ErrNotInProgress    = errors.New("quiz is not in progress")
	ErrNotFinished      = errors.New("quiz is not finished")
	ErrAlreadyAnswered  = errors.New("question already answered")
	ErrNotAnswered      = errors.New("question not answered yet")
	ErrOptionOutOfRange = errors.New("option index out of range")
)

// State is the quiz-taking state of one session. Transitions are pure functions that
// return a new State and leave their input untouched.
type State struct {
	Quiz         []aiquiz.Question `json:"quiz,omitempty"`
	CurrentIndex int               `json:"currentIndex"`
	Selections   map[int]int       `json:"selections,omitempty"`
	// Explanations holds explanation text by option index for the current question only.
	Explanations map[int]string `json:"explanations,omitempty"`
}

func (s State) Status() Status {
	switch {
	case len(s.Quiz) == 0:
		return StatusIdle
	case s.CurrentIndex >= len(s.Quiz):
		return StatusFinished
	default:
		return StatusInProgress
	}
}

func (s State) Finished() bool {
	return s.Status() == StatusFinished
}

// Current returns the question on display; ok is false outside InProgress.
func (s State) Current() (aiquiz.Question, bool) {
	if s.Status() != StatusInProgress {
		return aiquiz.Question{}, false
	}
	return s.Quiz[s.CurrentIndex], true
}

func (s State) Selection(questionIndex int) (int, bool) {
	opt, ok := s.Selections[questionIndex]
	return opt, ok
}

func (s State) clone() State {
	out := State{
		Quiz:         s.Quiz,
		CurrentIndex: s.CurrentIndex,
		Selections:   make(map[int]int, len(s.Selections)),
		Explanations: make(map[int]string, len(s.Explanations)),
	}
	for k, v := range s.Selections {
		out.Selections[k] = v
	}
	for k, v := range s.Explanations {
		out.Explanations[k] = v
	}
	return out
}

// Load starts a fresh quiz from any state.
func Load(_ State, quiz []aiquiz.Question) (State, error) {
	if len(quiz) == 0 {
		return State{}, ErrEmptyQuiz
	}
	owned := make([]aiquiz.Question, len(quiz))
	copy(owned, quiz)
	return State{
		Quiz:         owned,
		Selections:   map[int]int{},
		Explanations: map[int]string{},
	}, nil
}

// SelectOption records the first answer for the current question. Later calls for the
// same question return ErrAlreadyAnswered and the unchanged state.
func SelectOption(s State, option int) (State, error) {
	q, ok := s.Current()
	if !ok {
		return s, ErrNotInProgress
	}
	if option < 0 || option >= len(q.Options) {
		return s, ErrOptionOutOfRange
	}
	if _, answered := s.Selections[s.CurrentIndex]; answered {
		return s, ErrAlreadyAnswered
	}

	next := s.clone()
	next.Selections[s.CurrentIndex] = option
	return next, nil
}

// Advance moves to the next question, answered or not. From the last question it
// enters Finished; in Finished it is a no-op.
func Advance(s State) (State, error) {
	switch s.Status() {
	case StatusIdle:
		return s, ErrNoQuiz
	case StatusFinished:
		return s, nil
	}
	next := s.clone()
	next.CurrentIndex++
	next.Explanations = map[int]string{}
	return next, nil
}

// Retreat moves back one question, keeping every selection for review.
func Retreat(s State) (State, error) {
	if s.Status() != StatusInProgress {
		return s, ErrNotInProgress
	}
	if s.CurrentIndex == 0 {
		return s, nil
	}
	next := s.clone()
	next.CurrentIndex--
	next.Explanations = map[int]string{}
	return next, nil
}

// Reset discards the quiz and all quiz-taking state.
func Reset(State) State {
	return State{}
}

// CacheExplanation stores text for option on questionIndex. Results for a question that
// is no longer on display are dropped.
func CacheExplanation(s State, questionIndex, option int, text string) State {
	if s.Status() != StatusInProgress || s.CurrentIndex != questionIndex {
		return s
	}
	next := s.clone()
	next.Explanations[option] = text
	return next
}

func CorrectCount(s State) int {
	correct := 0
	for i, q := range s.Quiz {
		if opt, ok := s.Selections[i]; ok && opt == q.CorrectIndex {
			correct++
		}
	}
	return correct
}

// Score is round(100 * correct / total); unanswered questions count as wrong.
func Score(s State) int {
	if len(s.Quiz) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(CorrectCount(s)) / float64(len(s.Quiz))))
}

type MissedQuestion struct {
	QuestionIndex int    `json:"questionIndex"`
	Question      string `json:"question"`
	YourAnswer    string `json:"yourAnswer,omitempty"`
	CorrectAnswer string `json:"correctAnswer"`
}

func Missed(s State) []MissedQuestion {
	missed := []MissedQuestion{}
	for i, q := range s.Quiz {
		opt, ok := s.Selections[i]
		if ok && opt == q.CorrectIndex {
			continue
		}
		m := MissedQuestion{
			QuestionIndex: i,
			Question:      q.Question,
			CorrectAnswer: q.OptionText(q.CorrectIndex),
		}
		if ok {
			m.YourAnswer = q.OptionText(opt)
		}
		missed = append(missed, m)
	}
	return missed
}

type Result struct {
	Score        int              `json:"score"`
	CorrectCount int              `json:"correctCount"`
	Total        int              `json:"total"`
	Passed       bool             `json:"passed"`
	Missed       []MissedQuestion `json:"missed"`
}

// Summarize derives the result view; it is only defined once the quiz is finished.
func Summarize(s State) (Result, error) {
	if !s.Finished() {
		return Result{}, ErrNotFinished
	}
	score := Score(s)
	return Result{
		Score:        score,
		CorrectCount: CorrectCount(s),
		Total:        len(s.Quiz),
		Passed:       score >= PassThreshold,
		Missed:       Missed(s),
	}, nil
}
