package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampConfidence(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below range", -0.5, 0},
		{"zero", 0, 0},
		{"in range", 0.42, 0.42},
		{"one", 1, 1},
		{"above range", 3.7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampConfidence(tt.in))
		})
	}
}

func TestArtifact_JSONMarshaling(t *testing.T) {
	artifact := Artifact{
		ID:      "a1",
		Role:    "UX Expert",
		Title:   "UX Strategy",
		Summary: "A four step onboarding journey",
		Content: "A four step onboarding journey",
		Type:    TypeUXFlow,
		Projection: map[string]any{
			"steps": []any{map[string]any{"label": "Sign up", "desc": "Create an account"}},
		},
		Confidence: 0.8,
	}

	jsonBytes, err := json.Marshal(artifact)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"type":"ux-flow"`)
	assert.Contains(t, string(jsonBytes), `"confidence":0.8`)

	var back Artifact
	require.NoError(t, json.Unmarshal(jsonBytes, &back))
	assert.Equal(t, artifact.ID, back.ID)
	assert.Equal(t, artifact.Type, back.Type)
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"idea", "mvp", "scale"} {
		m, err := ParseMode(valid)
		require.NoError(t, err)
		assert.Equal(t, Mode(valid), m)
	}

	_, err := ParseMode("enterprise")
	assert.Error(t, err)
}

func TestParseDepth(t *testing.T) {
	for _, valid := range []string{"quick", "standard", "deep"} {
		d, err := ParseDepth(valid)
		require.NoError(t, err)
		assert.Equal(t, Depth(valid), d)
	}

	_, err := ParseDepth("exhaustive")
	assert.Error(t, err)
}
