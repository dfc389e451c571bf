package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SchemaField is one field entry of a narrowing schema.
type SchemaField struct {
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`
}

// Schema is an optional target field list restricting which catalog fields
// a query selects. Field order in the schema does not matter; selection
// always follows catalog order.
type Schema struct {
	Fields []SchemaField `yaml:"fields"`

	names map[string]struct{}
}

// NewSchema builds a schema from plain field names.
func NewSchema(fieldNames ...string) *Schema {
	schema := &Schema{}
	for _, name := range fieldNames {
		schema.Fields = append(schema.Fields, SchemaField{Name: name})
	}
	return schema
}

// LoadSchema reads a YAML schema file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	return ParseSchema(data)
}

// ParseSchema parses YAML schema bytes.
func ParseSchema(data []byte) (*Schema, error) {
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if len(schema.Fields) == 0 {
		return nil, fmt.Errorf("schema contains no fields")
	}
	return &schema, nil
}

// HasField reports whether the schema contains the named field.
func (s *Schema) HasField(name string) bool {
	if s.names == nil {
		s.names = make(map[string]struct{}, len(s.Fields))
		for _, field := range s.Fields {
			s.names[field.Name] = struct{}{}
		}
	}
	_, ok := s.names[name]
	return ok
}

// FieldNames returns the schema field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, field := range s.Fields {
		names[i] = field.Name
	}
	return names
}
