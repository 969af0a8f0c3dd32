package aiquiz

import (
	"fmt"
	"strings"
)

// bridgeThreshold is the difficulty above which bridge and stretch questions are requested.
const bridgeThreshold = 7

var bloomDescriptions = map[TaxonomyLevel]string{
	TaxonomyRecall:   "Facts & Basic Concepts",
	TaxonomyAnalyze:  "Draw Connections",
	TaxonomyEvaluate: "Justify a Stand",
	TaxonomyCreate:   "Produce New Work",
}

func BloomDescription(level TaxonomyLevel) string {
	if desc, ok := bloomDescriptions[level]; ok {
		return desc
	}
	return "General Knowledge"
}

const quizPromptTemplate = `ACT AS: A Senior Educational Architect.
TASK: Generate a %d-question quiz in strict JSON format.

CONTEXT: %s

TAXONOMY FOCUS (Bloom's): %s
(Targeting: %s)

ADAPTIVE PARAMETERS:
- Difficulty: %d/10
- Conceptual Depth: %d/10
%s
OUTPUT FORMAT:
[
  {
    "question": "...",
    "options": ["...", "...", "...", "..."],
    "correctIndex": 0,
    "bloomLevel": "%s",
    "explanation": "Brief logic for the correct answer.",
    "bridge": boolean (true if this is a foundation question)
  }
]

RETURN ONLY THE ARRAY. NO PROSE.
`

// BuildQuizPrompt renders the generation instruction for cfg over content.
func BuildQuizPrompt(cfg QuizConfig, content string, weakPoints []string) string {
	var adaptive strings.Builder
	if cfg.Difficulty > bridgeThreshold {
		adaptive.WriteString(`- Adaptive Logic: Include exactly 1 "Bridge Question" (easier, foundational) and exactly 1 "Stretch Question" (harder, more complex).` + "\n")
	}
	if len(weakPoints) > 0 {
		fmt.Fprintf(&adaptive, "- Remedial Focus: Include exactly 2 questions specifically on: %s\n", strings.Join(weakPoints, ", "))
	}

	return fmt.Sprintf(quizPromptTemplate,
		cfg.QuestionCount,
		strings.TrimSpace(content),
		cfg.TaxonomyLevel,
		BloomDescription(cfg.TaxonomyLevel),
		cfg.Difficulty,
		cfg.Depth,
		adaptive.String(),
		cfg.TaxonomyLevel,
	)
}

// BuildExplanationPrompt asks for a short justification of a single chosen option.
func BuildExplanationPrompt(q Question, selectedOption string, isCorrect bool) string {
	status, verdict := "INCORRECT", "incorrect"
	if isCorrect {
		status, verdict = "CORRECT", "correct"
	}

	return fmt.Sprintf(`ACT AS: A Tutor.
CONTEXT: The user is taking a quiz.
QUESTION: %q
SELECTED OPTION: %q
STATUS: %s

TASK: Explain in 1-2 sentences why this option is %s. Be encouraging but factual.
`, q.Question, selectedOption, status, verdict)
}
