package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const snapshotSchemaURL = "schema://mathcards/stats-snapshot.json"

// snapshotSchema describes the persisted and exported document. Session
// records are not constrained here; they are decoded
// leniently.
var snapshotSchema = map[string]any{
	"type":     "object",
	"required": []any{"sessions"},
	"properties": map[string]any{
		"sessions": map[string]any{"type": "array"},
	},
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSnapshot checks raw JSON against the snapshot schema.
func validateSnapshot(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %w", ErrInvalidImportShape, err)
	}

	schema, err := snapshotValidator()
	if err != nil {
		return fmt.Errorf("compile snapshot schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidImportShape, err)
	}
	return nil
}

func snapshotValidator() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(snapshotSchemaURL, snapshotSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(snapshotSchemaURL)
	})
	return compiledSchema, compileErr
}
