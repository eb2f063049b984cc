// Package schema provides fail-soft validation and repair of model output.
// Validation failure is never fatal to the node that triggered it; it only
// downgrades artifact quality by substituting declared defaults.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// FieldType names follow JSON Schema type vocabulary.
type FieldType string

// Supported field types
const (
	String  FieldType = "string"
	Number  FieldType = "number"
	Boolean FieldType = "boolean"
	List    FieldType = "array"
	Object  FieldType = "object"
)

// Field declares one expected top-level field of a specialist payload.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Default     any
	Description string
}

// Schema is the expected structural shape of one role's output: field names,
// types, required flags, and the defaults substituted during repair.
type Schema struct {
	Name   string
	Fields []Field

	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
}

// New builds a Schema, guaranteeing a "summary" string field is always
// declared so every repaired payload carries displayable text.
func New(name string, fields ...Field) *Schema {
	hasSummary := false
	for _, f := range fields {
		if f.Name == "summary" {
			hasSummary = true
			break
		}
	}
	if !hasSummary {
		fields = append([]Field{{Name: "summary", Type: String, Default: ""}}, fields...)
	}
	return &Schema{Name: name, Fields: fields}
}

// Defaults returns a fresh payload populated with every declared default.
func (s *Schema) Defaults() map[string]any {
	defaults := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		if f.Default != nil {
			defaults[f.Name] = cloneValue(f.Default)
			continue
		}
		defaults[f.Name] = zeroValue(f.Type)
	}
	return defaults
}

// listField returns the schema's single array-typed field name, when the
// schema has exactly one. Used to adopt a bare top-level JSON array.
func (s *Schema) listField() (string, bool) {
	name := ""
	for _, f := range s.Fields {
		if f.Type == List {
			if name != "" {
				return "", false
			}
			name = f.Name
		}
	}
	return name, name != ""
}

// compile builds the gojsonschema document for this schema once.
func (s *Schema) compile() (*gojsonschema.Schema, error) {
	s.compileOnce.Do(func() {
		doc := s.document()
		raw, err := json.Marshal(doc)
		if err != nil {
			s.compileErr = fmt.Errorf("marshal schema %s: %w", s.Name, err)
			return
		}
		s.compiled, s.compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	})
	return s.compiled, s.compileErr
}

// document renders the schema as a JSON Schema object document.
func (s *Schema) document() map[string]any {
	properties := make(map[string]any, len(s.Fields))
	var required []string
	for _, f := range s.Fields {
		prop := map[string]any{"type": string(f.Type)}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}

	doc := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

// zeroValue returns the neutral value for a field type.
func zeroValue(t FieldType) any {
	switch t {
	case String:
		return ""
	case Number:
		return float64(0)
	case Boolean:
		return false
	case List:
		return []any{}
	case Object:
		return map[string]any{}
	}
	return nil
}

// cloneValue deep-copies a default through JSON so callers can mutate the
// repaired payload without corrupting the schema's declared defaults.
func cloneValue(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
