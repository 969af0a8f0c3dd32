package aiquiz

import "errors"

var (
	ErrGeneration  = errors.New("quiz generation request failed")
	ErrNoCandidate = errors.New("model returned no completion candidate")
	ErrDecode      = errors.New("model output could not be decoded into questions")
)

// Fallback texts returned by ExplainAnswer instead of an error.
const (
	FallbackNoExplanation     = "Could not generate explanation."
	FallbackExplanationFailed = "Failed to get explanation. Please try again."
)

// IsFallback reports whether text is one of the fallback texts rather than a model reply.
func IsFallback(text string) bool {
	return text == FallbackNoExplanation || text == FallbackExplanationFailed
}
