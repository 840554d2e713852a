package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// tutorialSchema is the JSON Schema every tutorial document must
// satisfy before structural validation runs. Kept as a Go value so the
// binary carries it without embedding a file.
var tutorialSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"required": []any{
		"language", "name", "topics",
	},
	"properties": map[string]any{
		"language":    map[string]any{"type": "string", "minLength": 1},
		"name":        map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"level": map[string]any{
			"type": "string",
			"enum": []any{"beginner", "intermediate", "advanced"},
		},
		"topics": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"$ref": "#/$defs/topic"},
		},
	},
	"$defs": map[string]any{
		"topic": map[string]any{
			"type":     "object",
			"required": []any{"id", "title", "content"},
			"properties": map[string]any{
				"id":                map[string]any{"type": "string", "minLength": 1},
				"title":             map[string]any{"type": "string", "minLength": 1},
				"description":       map[string]any{"type": "string"},
				"content":           map[string]any{"type": "string"},
				"order":             map[string]any{"type": "integer", "minimum": 0},
				"estimated_minutes": map[string]any{"type": "integer", "minimum": 0},
				"subtopics": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/subtopic"},
				},
				"examples": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/example"},
				},
				"exercises": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/exercise"},
				},
				"quiz": map[string]any{"$ref": "#/$defs/quiz"},
			},
		},
		"subtopic": map[string]any{
			"type":     "object",
			"required": []any{"id", "title", "content"},
			"properties": map[string]any{
				"id":      map[string]any{"type": "string", "minLength": 1},
				"title":   map[string]any{"type": "string", "minLength": 1},
				"content": map[string]any{"type": "string"},
			},
		},
		"example": map[string]any{
			"type":     "object",
			"required": []any{"title", "code"},
			"properties": map[string]any{
				"title":       map[string]any{"type": "string", "minLength": 1},
				"code":        map[string]any{"type": "string", "minLength": 1},
				"explanation": map[string]any{"type": "string"},
				"output":      map[string]any{"type": "string"},
			},
		},
		"exercise": map[string]any{
			"type":     "object",
			"required": []any{"id", "title", "description"},
			"properties": map[string]any{
				"id":           map[string]any{"type": "string", "minLength": 1},
				"title":        map[string]any{"type": "string", "minLength": 1},
				"description":  map[string]any{"type": "string", "minLength": 1},
				"starter_code": map[string]any{"type": "string"},
				"solution":     map[string]any{"type": "string"},
				"difficulty": map[string]any{
					"type": "string",
					"enum": []any{"beginner", "intermediate", "advanced"},
				},
				"hints": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"points": map[string]any{"type": "integer", "minimum": 0},
			},
		},
		"quiz": map[string]any{
			"type":     "object",
			"required": []any{"questions"},
			"properties": map[string]any{
				"passing_score": map[string]any{
					"type": "number", "exclusiveMinimum": 0, "maximum": 100,
				},
				"time_limit": map[string]any{"type": "integer", "minimum": 0},
				"questions": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"$ref": "#/$defs/question"},
				},
			},
		},
		"question": map[string]any{
			"type":     "object",
			"required": []any{"id", "prompt", "type"},
			"properties": map[string]any{
				"id":     map[string]any{"type": "string", "minLength": 1},
				"prompt": map[string]any{"type": "string", "minLength": 1},
				"type": map[string]any{
					"type": "string",
					"enum": []any{
						"multiple_choice", "true_false",
						"fill_blank", "code_completion",
					},
				},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"answer":       map[string]any{"type": "integer", "minimum": 1},
				"answer_text":  map[string]any{"type": "string"},
				"code_snippet": map[string]any{"type": "string"},
				"explanation":  map[string]any{"type": "string"},
				"points":       map[string]any{"type": "number", "minimum": 0},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledTutorialSchema compiles tutorialSchema once and caches it.
func compiledTutorialSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://tutorial.json"
		if err := c.AddResource(schemaURL, tutorialSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateSchema checks raw JSON against the tutorial document schema.
func validateSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledTutorialSchema()
	if err != nil {
		return fmt.Errorf("compile tutorial schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
