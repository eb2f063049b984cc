package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uxSchema() *Schema {
	return New("ux-flow",
		Field{Name: "summary", Type: String, Required: true, Default: ""},
		Field{Name: "steps", Type: List, Required: true, Default: []any{}},
	)
}

func TestExtractBalanced(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"object in prose", `Sure! Here is the JSON: {"a":1} Hope that helps.`, `{"a":1}`},
		{"object in fence", "```json\n{\"a\": [1, 2]}\n```", `{"a": [1, 2]}`},
		{"array payload", `the list: [1,2,3] done`, `[1,2,3]`},
		{"nested brackets", `{"a":{"b":[1,{"c":2}]}}`, `{"a":{"b":[1,{"c":2}]}}`},
		{"brackets inside strings", `{"a":"}]"}`, `{"a":"}]"}`},
		{"escaped quotes", `{"a":"say \"hi\" {"}`, `{"a":"say \"hi\" {"}`},
		{"unbalanced then balanced", `broken { oops... {"a":1}`, `{"a":1}`},
		{"no payload", "nothing to see here", ""},
		{"never closes", `{"a": 1`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBalanced(tt.in))
		})
	}
}

func TestValidate_CleanPayload(t *testing.T) {
	payload, clean := Validate(uxSchema(), `{"summary":"four steps","steps":[{"label":"Sign up","desc":"Create account"}]}`)

	assert.True(t, clean)
	assert.Equal(t, "four steps", payload["summary"])
	steps, ok := payload["steps"].([]any)
	require.True(t, ok)
	assert.Len(t, steps, 1)
}

func TestValidate_NeverFailsOnGarbage(t *testing.T) {
	inputs := []string{
		"",
		"the model refused to answer",
		"{{{{",
		`{"summary": `,
		"\x00\x01binary junk",
	}

	for _, in := range inputs {
		payload, clean := Validate(uxSchema(), in)
		assert.False(t, clean)
		assert.Equal(t, FallbackSummary, payload["summary"])
		assert.Equal(t, []any{}, payload["steps"])
	}
}

func TestValidate_IdempotentOnValidInput(t *testing.T) {
	s := uxSchema()
	first, clean := Validate(s, `{"summary":"ok","steps":[{"label":"a"}],"confidence":0.7}`)
	require.True(t, clean)

	raw, err := json.Marshal(first)
	require.NoError(t, err)

	second, clean := Validate(s, string(raw))
	assert.True(t, clean)
	assert.Equal(t, first, second)
}

func TestValidate_WrappedInProse(t *testing.T) {
	payload, clean := Validate(uxSchema(), "Here you go:\n```json\n{\"summary\":\"s\",\"steps\":[]}\n```\nenjoy")
	assert.True(t, clean)
	assert.Equal(t, "s", payload["summary"])
}

func TestValidate_WrongTypeFieldDefaulted(t *testing.T) {
	payload, clean := Validate(uxSchema(), `{"summary": 12, "steps": [{"label":"a"}]}`)

	assert.False(t, clean)
	// summary was numeric, so the default (then fallback text) wins
	assert.Equal(t, FallbackSummary, payload["summary"])
	// steps was well-formed and survives the repair
	steps, ok := payload["steps"].([]any)
	require.True(t, ok)
	assert.Len(t, steps, 1)
}

func TestValidate_MissingRequiredFieldDefaulted(t *testing.T) {
	payload, clean := Validate(uxSchema(), `{"summary":"s"}`)

	assert.False(t, clean)
	assert.Equal(t, "s", payload["summary"])
	assert.Equal(t, []any{}, payload["steps"])
}

func TestValidate_BareArrayAdoptedByListField(t *testing.T) {
	payload, clean := Validate(uxSchema(), `[{"label":"a"},{"label":"b"}]`)

	assert.False(t, clean, "array payloads are missing the required summary")
	steps, ok := payload["steps"].([]any)
	require.True(t, ok)
	assert.Len(t, steps, 2)
}

func TestValidate_ConfidencePassthrough(t *testing.T) {
	payload, _ := Validate(uxSchema(), `{"summary":"s","steps":[],"confidence":0.35}`)
	assert.Equal(t, 0.35, payload["confidence"])

	payload, _ = Validate(uxSchema(), `{"summary":"s","steps":[]}`)
	_, present := payload["confidence"]
	assert.False(t, present)
}

func TestSchema_NewAlwaysDeclaresSummary(t *testing.T) {
	s := New("bare", Field{Name: "items", Type: List, Default: []any{}})
	defaults := s.Defaults()
	_, ok := defaults["summary"]
	assert.True(t, ok)
}

func TestSchema_DefaultsAreIsolated(t *testing.T) {
	s := New("iso", Field{Name: "tags", Type: List, Default: []any{"x"}})

	a := s.Defaults()
	a["tags"] = append(a["tags"].([]any), "mutated")

	b := s.Defaults()
	assert.Equal(t, []any{"x"}, b["tags"], "mutating one payload must not corrupt declared defaults")
}
