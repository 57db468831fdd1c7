package config

import (
	"encoding/json"
	"sync"

	"github.com/grovetools/mantra/schema"
	"github.com/invopop/jsonschema"
)

//go:generate go run ../tools/schema-generator -o ../schema/mantra.schema.json

const schemaResourceName = "mantra.schema.json"

// extensionKeys are the top-level sections decoded by UnmarshalExtension.
var extensionKeys = []string{"logging", "tui"}

// GenerateSchema generates the JSON Schema for mantra configuration files.
// Unknown top-level keys are rejected; extension sections must be listed in
// extensionKeys.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		Anonymous:                 true,
		FieldNameTag:              "yaml",
	}

	s := r.Reflect(&Config{})
	for _, key := range extensionKeys {
		s.Properties.Set(key, &jsonschema.Schema{
			Type:        "object",
			Description: key + " configuration",
		})
	}
	s.Title = "Mantra Configuration"
	s.Description = "Schema for .claude/mantra.yml and the global mantra.yml."
	s.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(s, "", "  ")
}

var (
	validatorOnce sync.Once
	validator     *schema.Validator
	validatorErr  error
)

func schemaValidator() (*schema.Validator, error) {
	validatorOnce.Do(func() {
		data, err := GenerateSchema()
		if err != nil {
			validatorErr = err
			return
		}
		validator, validatorErr = schema.NewValidator(schemaResourceName, data)
	})
	return validator, validatorErr
}
