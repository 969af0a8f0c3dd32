package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
)

// Session is one user's quiz workspace. Config, Mode, Content and WeakPoints survive
// Reset; State does not.
type Session struct {
	ID         uuid.UUID         `json:"id"`
	Config     aiquiz.QuizConfig `json:"config"`
	Mode       aiquiz.InputMode  `json:"mode"`
	Content    string            `json:"content,omitempty"`
	WeakPoints []string          `json:"weakPoints,omitempty"`
	State      State             `json:"state"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

func (s *Session) clone() *Session {
	out := *s
	out.WeakPoints = append([]string(nil), s.WeakPoints...)
	out.State = s.State.clone()
	return &out
}
