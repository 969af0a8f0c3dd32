package aiquiz

type TaxonomyLevel string

const (
	TaxonomyRecall   TaxonomyLevel = "Recall"
	TaxonomyAnalyze  TaxonomyLevel = "Analyze"
	TaxonomyEvaluate TaxonomyLevel = "Evaluate"
	TaxonomyCreate   TaxonomyLevel = "Create"
)

type InputMode string

const (
	InputModeText  InputMode = "text"
	InputModeTopic InputMode = "topic"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

type QuizConfig struct {
	QuestionCount int           `json:"count" validate:"min=1,max=15"`
	Difficulty    int           `json:"difficulty" validate:"min=1,max=10"`
	TaxonomyLevel TaxonomyLevel `json:"taxonomyLevel" validate:"oneof=Recall Analyze Evaluate Create"`
	Depth         int           `json:"depth" validate:"min=1,max=10"`
}

func DefaultConfig() QuizConfig {
	return QuizConfig{
		QuestionCount: 5,
		Difficulty:    5,
		TaxonomyLevel: TaxonomyRecall,
		Depth:         5,
	}
}

type Question struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	BloomLevel   string   `json:"bloomLevel"`
	Explanation  string   `json:"explanation"`
	Bridge       bool     `json:"bridge"`
}

// OptionText returns the text of option i, or "" when i is out of range.
func (q Question) OptionText(i int) string {
	if i < 0 || i >= len(q.Options) {
		return ""
	}
	return q.Options[i]
}

type QuestionRequest struct {
	Content    string      `json:"content"`
	Mode       InputMode   `json:"mode,omitempty" validate:"omitempty,oneof=text topic"`
	Config     *QuizConfig `json:"config,omitempty"`
	WeakPoints []string    `json:"weakPoints,omitempty" validate:"omitempty,dive,required"`
}

type QuestionResponse struct {
	Questions []Question `json:"questions"`
}
