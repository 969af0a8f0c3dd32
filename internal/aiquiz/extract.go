package aiquiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONArray returns the span from the first '[' to the last ']' in raw.
// When either bracket is missing the raw text is returned unchanged.
func ExtractJSONArray(raw string) string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}

// DecodeQuestions extracts, validates and decodes the question array in a model reply.
func DecodeQuestions(raw string) ([]Question, error) {
	payload := []byte(ExtractJSONArray(raw))

	if !json.Valid(payload) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", ErrDecode)
	}
	if err := validateQuestions(payload); err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(payload, &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return questions, nil
}
