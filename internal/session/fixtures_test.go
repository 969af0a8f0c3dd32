package session_test

import (
	"testing"

	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
	"github.com/saulo-duarte/quiz-wizard/internal/session"
)

func question(text string, correct int) aiquiz.Question {
	return aiquiz.Question{
		Question:     text,
		Options:      []string{"A", "B", "C", "D"},
		CorrectIndex: correct,
		BloomLevel:   "Recall",
		Explanation:  "because",
	}
}

func loaded(t *testing.T, quiz ...aiquiz.Question) session.State {
	t.Helper()
	st, err := session.Load(session.State{}, quiz)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return st
}

// must unwraps a transition result: must(t)(session.Advance(st)).
func must(t *testing.T) func(session.State, error) session.State {
	return func(st session.State, err error) session.State {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return st
	}
}
