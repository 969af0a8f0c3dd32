package session

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
)

type CreateSessionRequest struct {
	Config *aiquiz.QuizConfig `json:"config,omitempty"`
	Mode   aiquiz.InputMode   `json:"mode,omitempty"`
}

type UpdateConfigRequest struct {
	Config aiquiz.QuizConfig `json:"config"`
	Mode   aiquiz.InputMode  `json:"mode,omitempty"`
}

type OptionRequest struct {
	Option *int `json:"option"`
}

type CreateSessionResponse struct {
	Session SessionView `json:"session"`
	Token   string      `json:"token"`
}

type ExplainResponse struct {
	QuestionIndex int    `json:"questionIndex"`
	Option        int    `json:"option"`
	Explanation   string `json:"explanation"`
}

type SessionView struct {
	ID         uuid.UUID         `json:"id"`
	Status     Status            `json:"status"`
	Config     aiquiz.QuizConfig `json:"config"`
	Mode       aiquiz.InputMode  `json:"mode"`
	Generating bool              `json:"generating"`
	Question   *QuestionView     `json:"question,omitempty"`
	Result     *Result           `json:"result,omitempty"`
}

// QuestionView is what the quiz screen renders. The correct option and the model's
// explanation are withheld until the question is answered.
type QuestionView struct {
	Index             int            `json:"index"`
	Total             int            `json:"total"`
	Question          string         `json:"question"`
	Options           []string       `json:"options"`
	BloomLevel        string         `json:"bloomLevel,omitempty"`
	Bridge            bool           `json:"bridge"`
	Answered          bool           `json:"answered"`
	SelectedIndex     *int           `json:"selectedIndex,omitempty"`
	CorrectIndex      *int           `json:"correctIndex,omitempty"`
	IsCorrect         *bool          `json:"isCorrect,omitempty"`
	Explanation       string         `json:"explanation,omitempty"`
	Explanations      map[int]string `json:"explanations,omitempty"`
	ExplainingOptions []int          `json:"explainingOptions"`
	CanGoBack         bool           `json:"canGoBack"`
	IsLast            bool           `json:"isLast"`
}
