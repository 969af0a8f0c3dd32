package aiquiz_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
)

func TestBloomDescription(t *testing.T) {
	cases := map[aiquiz.TaxonomyLevel]string{
		aiquiz.TaxonomyRecall:   "Facts & Basic Concepts",
		aiquiz.TaxonomyAnalyze:  "Draw Connections",
		aiquiz.TaxonomyEvaluate: "Justify a Stand",
		aiquiz.TaxonomyCreate:   "Produce New Work",
		"Remember":              "General Knowledge",
		"":                      "General Knowledge",
	}
	for level, want := range cases {
		if got := aiquiz.BloomDescription(level); got != want {
			t.Errorf("BloomDescription(%q) = %q, want %q", level, got, want)
		}
	}
}

func TestBuildQuizPrompt(t *testing.T) {
	levels := []aiquiz.TaxonomyLevel{aiquiz.TaxonomyRecall, aiquiz.TaxonomyAnalyze, aiquiz.TaxonomyEvaluate, aiquiz.TaxonomyCreate}

	for difficulty := 1; difficulty <= 10; difficulty++ {
		for _, level := range levels {
			cfg := aiquiz.QuizConfig{QuestionCount: 12, Difficulty: difficulty, TaxonomyLevel: level, Depth: 3}
			name := fmt.Sprintf("%s/difficulty-%d", level, difficulty)

			t.Run(name, func(t *testing.T) {
				prompt := aiquiz.BuildQuizPrompt(cfg, "The French Revolution", nil)

				for _, want := range []string{
					"Generate a 12-question quiz",
					fmt.Sprintf("Difficulty: %d/10", difficulty),
					"Conceptual Depth: 3/10",
					aiquiz.BloomDescription(level),
					"CONTEXT: The French Revolution",
					`"correctIndex"`,
				} {
					if !strings.Contains(prompt, want) {
						t.Errorf("prompt missing %q", want)
					}
				}

				hasBridge := strings.Contains(prompt, "Bridge Question") && strings.Contains(prompt, "Stretch Question")
				if hasBridge != (difficulty > 7) {
					t.Errorf("bridge clause present=%v for difficulty %d", hasBridge, difficulty)
				}
				if strings.Contains(prompt, "Remedial Focus") {
					t.Error("remedial clause present without weak points")
				}
			})
		}
	}
}

func TestBuildQuizPromptWeakPoints(t *testing.T) {
	cfg := aiquiz.DefaultConfig()

	prompt := aiquiz.BuildQuizPrompt(cfg, "cell biology", []string{"mitosis", "osmosis"})
	if !strings.Contains(prompt, "Include exactly 2 questions specifically on: mitosis, osmosis") {
		t.Errorf("remedial clause missing from prompt:\n%s", prompt)
	}

	empty := aiquiz.BuildQuizPrompt(cfg, "cell biology", []string{})
	if strings.Contains(empty, "Remedial Focus") {
		t.Error("remedial clause present for empty weak point list")
	}
}

func TestBuildQuizPromptDeterministic(t *testing.T) {
	cfg := aiquiz.QuizConfig{QuestionCount: 7, Difficulty: 9, TaxonomyLevel: aiquiz.TaxonomyCreate, Depth: 8}
	a := aiquiz.BuildQuizPrompt(cfg, "graph theory", []string{"trees"})
	b := aiquiz.BuildQuizPrompt(cfg, "graph theory", []string{"trees"})
	if a != b {
		t.Error("identical inputs produced different prompts")
	}
}

func TestBuildExplanationPrompt(t *testing.T) {
	q := aiquiz.Question{Question: "What is 2+2?", Options: []string{"3", "4", "5", "22"}, CorrectIndex: 1}

	correct := aiquiz.BuildExplanationPrompt(q, "4", true)
	if !strings.Contains(correct, "STATUS: CORRECT") || !strings.Contains(correct, "why this option is correct") {
		t.Errorf("unexpected prompt for correct answer:\n%s", correct)
	}
	if !strings.Contains(correct, `"What is 2+2?"`) || !strings.Contains(correct, `SELECTED OPTION: "4"`) {
		t.Errorf("question or option missing:\n%s", correct)
	}

	wrong := aiquiz.BuildExplanationPrompt(q, "22", false)
	if !strings.Contains(wrong, "STATUS: INCORRECT") || !strings.Contains(wrong, "why this option is incorrect") {
		t.Errorf("unexpected prompt for wrong answer:\n%s", wrong)
	}
}
