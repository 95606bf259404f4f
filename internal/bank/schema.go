package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const catalogSchemaURL = "schema://phantomledger/catalog.json"

// catalogSchema describes the serialized catalog accepted from files and the
// remote question collection.
var catalogSchema = map[string]any{
	"type":     "object",
	"required": []any{"questions"},
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "level", "question"},
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"level":    map[string]any{"enum": []any{"easy", "medium", "hard", "expert"}},
					"story":    map[string]any{"type": "string"},
					"question": map[string]any{"type": "string", "minLength": 1},
					"answer":   map[string]any{"type": "string"},
					"hints": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items":    map[string]any{"type": "string"},
					},
					"correctAnswer": map[string]any{"type": "integer", "minimum": 0},
					"maxTime":       map[string]any{"type": "integer", "minimum": 0},
				},
				"anyOf": []any{
					map[string]any{"required": []any{"answer"}},
					map[string]any{"required": []any{"options", "correctAnswer"}},
				},
			},
		},
	},
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledCatalogSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go literals.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal catalog schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(catalogSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(catalogSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateCatalogJSON checks raw catalog JSON against catalogSchema.
func validateCatalogJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrInvalidCatalog, err)
	}
	sch, err := compiledCatalogSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return nil
}
