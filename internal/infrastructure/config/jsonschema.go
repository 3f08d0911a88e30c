package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/invopop/jsonschema"
)

const (
	filePerm       = 0o644
	schemaFileName = "config.schema.json"
)

// Schema reflects the configuration file layout into a JSON schema.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		ExpandedStruct: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeOf(time.Duration(0)) {
				return &jsonschema.Schema{
					Type:        "string",
					Pattern:     `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
					Description: "Go duration, e.g. 10s or 24h",
				}
			}
			return nil
		},
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/shamimkhan539/tab-suspend-pro-sub001/config.schema.json"
	schema.Title = "tabsnap configuration"
	schema.Description = "Configuration schema for tabsnap, the session snapshot and restore engine"
	return schema
}

// WriteSchemaFile writes the configuration schema into dir and returns its path.
func WriteSchemaFile(dir string) (string, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}

	schemaFile := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
