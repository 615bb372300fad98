package utils

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/nasarali03/Portfolio/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

const (
	SchemaProject       = "project"
	SchemaExperience    = "experience"
	SchemaEducation     = "education"
	SchemaCertification = "certification"
	SchemaHero          = "hero"
	SchemaAbout         = "about"
	SchemaSkill         = "skill"
	SchemaContact       = "contact"
	SchemaSummary       = "summary"
)

//go:embed schemas/*.schema.json
var schemaFiles embed.FS

// SchemaValidator checks form payloads against the embedded JSON schemas.
type SchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

func NewSchemaValidator() (*SchemaValidator, error) {
	entries, err := schemaFiles.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("failed to list schemas: %w", err)
	}

	schemas := make(map[string]*gojsonschema.Schema, len(entries))
	for _, entry := range entries {
		data, err := schemaFiles.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", entry.Name(), err)
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", entry.Name(), err)
		}
		schemas[strings.TrimSuffix(entry.Name(), ".schema.json")] = schema
	}
	return &SchemaValidator{schemas: schemas}, nil
}

// Validate returns a *models.ValidationError listing every failing field.
func (v *SchemaValidator) Validate(name string, doc any) error {
	schema, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &models.ValidationError{}
	for _, e := range result.Errors() {
		field := e.Field()
		if field == "(root)" {
			if property, ok := e.Details()["property"].(string); ok {
				field = property
			}
		}
		verr.Add(field, e.Description())
	}
	return verr
}
