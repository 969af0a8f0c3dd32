package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess     = "success"
	OutcomeTransport   = "transport_error"
	OutcomeNoCandidate = "no_candidate"
	OutcomeDecode      = "decode_error"
	OutcomeFallback    = "fallback"
	OutcomeDeduped     = "deduped"
)

var (
	llmRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizwizard_llm_requests_total",
			Help: "Calls to the generation endpoint by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	llmLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quizwizard_llm_request_duration_seconds",
			Help:    "Time spent waiting for the generation endpoint",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"operation"},
	)

	questionsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quizwizard_questions_generated_total",
			Help: "Questions decoded from model replies",
		},
	)

	sessionEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizwizard_session_events_total",
			Help: "Session state transitions by event",
		},
		[]string{"event"},
	)

	scores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quizwizard_quiz_score_percent",
			Help:    "Score of finished quizzes",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

func ObserveLLMCall(operation, outcome string, elapsed time.Duration) {
	llmRequests.WithLabelValues(operation, outcome).Inc()
	llmLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func RecordQuestions(n int) {
	questionsGenerated.Add(float64(n))
}

func RecordSessionEvent(event string) {
	sessionEvents.WithLabelValues(event).Inc()
}

func RecordScore(percent int) {
	scores.Observe(float64(percent))
}
