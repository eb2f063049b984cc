package pipeline

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/design-solver/internal/llm"
	"github.com/jonathan/design-solver/internal/prompts"
	"github.com/jonathan/design-solver/internal/roles"
	"github.com/jonathan/design-solver/internal/schema"
	"github.com/jonathan/design-solver/internal/types"
)

// runExpert executes one specialist node. Node failures never propagate:
// a failed call is logged and simply produces no artifact, leaving the rest
// of the run untouched.
func (o *Orchestrator) runExpert(ctx context.Context, state *runState, def roles.Definition, intent types.Intent, appMap types.AppMap, digest string) {
	node := prompts.MustGet("experts.json", "node")
	task := prompts.MustGet("experts.json", def.TaskKey)
	prompt := prompts.Format(node, map[string]string{
		"Label":  def.Label,
		"Intent": intentLine(intent),
		"AppMap": encodeAppMap(appMap),
		"Digest": digest,
		"Task":   task,
	})

	out, err := o.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		o.logger.Printf("expert %s failed, continuing without its artifact: %v", def.Role, err)
		return
	}

	payload, clean := schema.Validate(def.Schema, out)
	if !clean {
		o.logger.Printf("expert %s returned a malformed payload, repaired with defaults", def.Role)
	}

	confidence := float64(types.DefaultConfidence)
	if c, ok := payload["confidence"].(float64); ok {
		confidence = types.ClampConfidence(c)
		delete(payload, "confidence")
	}

	summary, _ := payload["summary"].(string)
	state.add(types.Artifact{
		ID:         uuid.NewString(),
		Role:       def.Label,
		Title:      def.Title,
		Summary:    summary,
		Type:       def.Type,
		Projection: payload,
		Confidence: confidence,
	})
}

// digestOf summarizes existing artifacts as prompt context for later phases.
func digestOf(artifacts []types.Artifact) string {
	if len(artifacts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Prior specialist findings:\n")
	for _, a := range artifacts {
		b.WriteString("- ")
		b.WriteString(a.Role)
		b.WriteString(": ")
		b.WriteString(a.Summary)
		b.WriteString("\n")
	}
	return b.String()
}
