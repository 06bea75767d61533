package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateJSONSchema returns the JSON schema of Config.
func GenerateJSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/rpmview/config.schema.json"
	schema.Title = "rpmview configuration"
	schema.Description = "Configuration schema for rpmview, the Ready Player Me avatar creator host"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
