package testgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionsSchema is the JSON Schema the model output must conform to:
// an object with a questions array, each question carrying a positive
// question_number, exactly four A-D options, a correct_answer letter and an
// explanation.
var questionsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question_number": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"question": map[string]any{
						"type": "string",
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": 4,
						"maxItems": 4,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"option": map[string]any{
									"type": "string",
									"enum": []any{"A", "B", "C", "D"},
								},
								"text": map[string]any{
									"type": "string",
								},
							},
							"required": []any{"option", "text"},
						},
					},
					// Membership of correct_answer among the option letters is
					// checked in code, where the options array is in scope.
					"correct_answer": map[string]any{
						"type": "string",
					},
					"explanation": map[string]any{
						"type": "string",
					},
				},
				"required": []any{"question_number", "question", "options", "correct_answer", "explanation"},
			},
		},
	},
	"required": []any{"questions"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledQuestionsSchema compiles questionsSchema once and reuses it for
// every request.
func compiledQuestionsSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value; round-trip the map to
		// normalize it.
		defBytes, err := json.Marshal(questionsSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://diagnostic-test.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateShape validates a parsed JSON document against the questions
// schema. Returns *ErrShapeMismatch on failure.
func validateShape(doc any, content string) error {
	compiled, err := compiledQuestionsSchema()
	if err != nil {
		return &ErrShapeMismatch{Content: content, Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := compiled.Validate(doc); err != nil {
		return &ErrShapeMismatch{Content: content, Err: err}
	}
	return nil
}
