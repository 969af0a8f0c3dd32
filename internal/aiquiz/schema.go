package aiquiz

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const questionsSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"options": {
				"type": "array",
				"items": {"type": "string"},
				"minItems": 4,
				"maxItems": 4
			},
			"correctIndex": {"type": "integer", "minimum": 0, "maximum": 3},
			"bloomLevel": {"type": "string"},
			"explanation": {"type": "string"},
			"bridge": {"type": "boolean"}
		},
		"required": ["question", "options", "correctIndex"]
	}
}`

var questionsSchemaLoader = gojsonschema.NewStringLoader(questionsSchema)

func validateQuestions(payload []byte) error {
	result, err := gojsonschema.Validate(questionsSchemaLoader, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: schema validation failed: %s", ErrDecode, strings.Join(msgs, "; "))
	}
	return nil
}
