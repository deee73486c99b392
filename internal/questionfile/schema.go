package questionfile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://question-file.json"

// fileSchema describes the on-disk question file. Cross-field rules (one
// explanation per option, correct index in range, unique ids) are enforced
// by quiz.NewQuestionSet after decoding.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{"type": "string"},
		"intro": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "integer", "minimum": 1},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":        "array",
						"minItems":    2,
						"uniqueItems": true,
						"items":       map[string]any{"type": "string", "minLength": 1},
					},
					"correct": map[string]any{"type": "integer", "minimum": 0},
					"explanations": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"id", "title", "options", "correct", "explanations"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles fileSchema once and caches the result.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, so round-trip the Go map.
		defBytes, err := json.Marshal(fileSchema)
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
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
