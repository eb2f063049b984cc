package schema

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FallbackSummary is substituted when a payload carries no usable summary.
const FallbackSummary = "Strategizing based on product requirements."

// Validate parses untrusted model output into a payload matching the schema.
// It never fails: on parse failure or schema mismatch the declared defaults
// are substituted field by field, producing a degraded-but-valid payload.
// The second return value reports whether the payload came through clean.
//
// A numeric "confidence" field rides along untouched even though role
// schemas do not declare it; the node executor reads it out of the payload.
func Validate(s *Schema, raw string) (map[string]any, bool) {
	payload := s.Defaults()

	candidate := ExtractBalanced(raw)
	if candidate == "" {
		ensureSummary(payload)
		return payload, false
	}

	doc, ok := decodeCandidate(s, candidate)
	if !ok {
		ensureSummary(payload)
		return payload, false
	}

	bad, clean := invalidFields(s, candidate, doc)

	for _, f := range s.Fields {
		val, present := doc[f.Name]
		if !present || bad[f.Name] || !typeMatches(f.Type, val) {
			clean = false
			continue
		}
		payload[f.Name] = val
	}

	if c, isNum := doc["confidence"].(float64); isNum {
		payload["confidence"] = c
	}

	ensureSummary(payload)
	return payload, clean
}

// decodeCandidate parses the extracted JSON. A bare top-level array is
// adopted under the schema's single list field when one exists.
func decodeCandidate(s *Schema, candidate string) (map[string]any, bool) {
	if firstBalancedIsObject(candidate) {
		var doc map[string]any
		if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
			return nil, false
		}
		return doc, true
	}

	var arr []any
	if err := json.Unmarshal([]byte(candidate), &arr); err != nil {
		return nil, false
	}
	field, ok := s.listField()
	if !ok {
		return nil, false
	}
	return map[string]any{field: arr}, true
}

// invalidFields runs the compiled JSON Schema over the candidate document
// and maps each violation back to its offending top-level field.
func invalidFields(s *Schema, candidate string, doc map[string]any) (map[string]bool, bool) {
	bad := make(map[string]bool)

	compiled, err := s.compile()
	if err != nil {
		// A schema that cannot compile is a programming error in the
		// registry; treat the document as unverified but usable.
		return bad, false
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return bad, false
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return bad, false
	}
	if result.Valid() {
		return bad, true
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "(root)" || field == "" {
			if prop, ok := desc.Details()["property"].(string); ok {
				field = prop
			}
		}
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[:idx]
		}
		if field != "" && field != "(root)" {
			bad[field] = true
		}
	}
	return bad, false
}

// typeMatches checks a decoded JSON value against a declared field type.
func typeMatches(t FieldType, val any) bool {
	switch t {
	case String:
		_, ok := val.(string)
		return ok
	case Number:
		_, ok := val.(float64)
		return ok
	case Boolean:
		_, ok := val.(bool)
		return ok
	case List:
		_, ok := val.([]any)
		return ok
	case Object:
		_, ok := val.(map[string]any)
		return ok
	}
	return false
}

// ensureSummary guarantees the payload carries displayable summary text.
func ensureSummary(payload map[string]any) {
	if s, ok := payload["summary"].(string); ok && strings.TrimSpace(s) != "" {
		return
	}
	payload["summary"] = FallbackSummary
}
