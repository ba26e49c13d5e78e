package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

// ConfigSchema returns the JSON schema of the configuration file.
func ConfigSchema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/canvasclip/config.schema.json"
	schema.Title = "canvasclip configuration"
	schema.Description = "Configuration schema for canvasclip, the canvas card clipboard negotiator"
	return schema
}

// CardsSchema returns the JSON schema of the structured "cards" clipboard
// representation.
func CardsSchema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect([]entity.CardSnapshot{})
	schema.ID = "https://github.com/bnema/canvasclip/cards.schema.json"
	schema.Title = "canvasclip cards"
	schema.Description = "Structured clipboard representation of copied canvas cards"
	return schema
}

// WriteSchemaFile writes schema to path as indented JSON.
func WriteSchemaFile(path string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
