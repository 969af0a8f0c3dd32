package aiquiz_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
)

const wellFormed = `[{"question":"Capital of France?","options":["Paris","Lyon","Nice","Lille"],"correctIndex":0,"bloomLevel":"Recall","explanation":"Paris is the capital.","bridge":false}]`

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Plain", "[1,2]", "[1,2]"},
		{"Prose", "Here you go: [1,2] enjoy", "[1,2]"},
		{"CodeFence", "```json\n[1,2]\n```", "[1,2]"},
		{"Nested", "x [[1],[2]] y", "[[1],[2]]"},
		{"NoOpening", "1,2]", "1,2]"},
		{"NoClosing", "[1,2", "[1,2"},
		{"NoBrackets", `{"a":1}`, `{"a":1}`},
		{"Reversed", "] oops [", "] oops ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := aiquiz.ExtractJSONArray(tt.raw); got != tt.want {
				t.Errorf("ExtractJSONArray(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecodeQuestions(t *testing.T) {
	t.Run("NoiseIsIgnored", func(t *testing.T) {
		direct, err := aiquiz.DecodeQuestions(wellFormed)
		if err != nil {
			t.Fatalf("decoding well-formed payload failed: %v", err)
		}
		noisy, err := aiquiz.DecodeQuestions("Sure! Here is your quiz:\n```json\n" + wellFormed + "\n```\nGood luck.")
		if err != nil {
			t.Fatalf("decoding noisy payload failed: %v", err)
		}
		if !reflect.DeepEqual(direct, noisy) {
			t.Errorf("noisy decode %+v differs from direct decode %+v", noisy, direct)
		}
		if len(direct) != 1 || direct[0].Options[direct[0].CorrectIndex] != "Paris" {
			t.Errorf("unexpected questions: %+v", direct)
		}
	})

	invalid := map[string]string{
		"NotJSON":         "I cannot help with that.",
		"Truncated":       `[{"question":"x","options":["a","b","c","d"],"correctIndex":0}`,
		"EmptyArray":      "[]",
		"ThreeOptions":    `[{"question":"x","options":["a","b","c"],"correctIndex":0}]`,
		"IndexOutOfRange": `[{"question":"x","options":["a","b","c","d"],"correctIndex":4}]`,
		"MissingQuestion": `[{"options":["a","b","c","d"],"correctIndex":1}]`,
		"StringIndex":     `[{"question":"x","options":["a","b","c","d"],"correctIndex":"1"}]`,
		"ObjectNotArray":  `{"erro":"tema inválido"}`,
		"BridgeWrongType": `[{"question":"x","options":["a","b","c","d"],"correctIndex":1,"bridge":"yes"}]`,
		"TwoArraysProse":  `first [1] then [2]`,
	}
	for name, raw := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := aiquiz.DecodeQuestions(raw)
			if !errors.Is(err, aiquiz.ErrDecode) {
				t.Errorf("expected ErrDecode, got %v", err)
			}
		})
	}
}
