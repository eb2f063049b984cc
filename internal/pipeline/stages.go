package pipeline

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/design-solver/internal/llm"
	"github.com/jonathan/design-solver/internal/prompts"
	"github.com/jonathan/design-solver/internal/schema"
	"github.com/jonathan/design-solver/internal/types"
)

var intentSchema = schema.New("intent",
	schema.Field{Name: "goal", Type: schema.String, Required: true, Default: ""},
	schema.Field{Name: "target", Type: schema.String, Default: ""},
	schema.Field{Name: "constraints", Type: schema.List, Default: []any{}},
)

var cartographySchema = schema.New("app-map",
	schema.Field{Name: "modules", Type: schema.List, Required: true, Default: []any{}},
)

// analyzeIntent distills the raw idea into goal, target and constraints.
// A call failure here is fatal to the run; a malformed payload is not, it
// only degrades the intent to defaults.
func (o *Orchestrator) analyzeIntent(ctx context.Context, idea types.Idea) (types.Intent, error) {
	tpl := prompts.MustGet("stages.json", "intent")
	prompt := prompts.Format(tpl, map[string]string{"Idea": idea.Raw})

	out, err := o.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return types.Intent{}, &StageError{Stage: "intent", Err: err}
	}

	payload, _ := schema.Validate(intentSchema, out)

	intent := types.Intent{
		Goal:   stringField(payload, "goal"),
		Target: stringField(payload, "target"),
	}
	for _, c := range listField(payload, "constraints") {
		if s, ok := c.(string); ok && s != "" {
			intent.Constraints = append(intent.Constraints, s)
		}
	}
	if intent.Goal == "" {
		// degraded intent still needs a goal for downstream prompts
		intent.Goal = idea.Raw
	}
	return intent, nil
}

// mapArchitecture derives the module map from the analyzed intent.
// Like intent, only a call failure is fatal; an empty or malformed module
// list is repaired to a single core module.
func (o *Orchestrator) mapArchitecture(ctx context.Context, idea types.Idea, intent types.Intent) (types.AppMap, error) {
	tpl := prompts.MustGet("stages.json", "cartography")
	prompt := prompts.Format(tpl, map[string]string{"Goal": intent.Goal, "Idea": idea.Raw})

	out, err := o.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return types.AppMap{}, &StageError{Stage: "cartography", Err: err}
	}

	payload, _ := schema.Validate(cartographySchema, out)

	var appMap types.AppMap
	raw, err := json.Marshal(map[string]any{"modules": payload["modules"]})
	if err == nil {
		// malformed entries decode to zero modules and are dropped below
		_ = json.Unmarshal(raw, &appMap)
	}

	modules := appMap.Modules[:0]
	for _, m := range appMap.Modules {
		if strings.TrimSpace(m.Name) != "" {
			modules = append(modules, m)
		}
	}
	appMap.Modules = modules

	if len(appMap.Modules) == 0 {
		appMap.Modules = []types.AppModule{{
			Name:        "Core",
			Description: intent.Goal,
			Features:    intent.Constraints,
		}}
	}
	return appMap, nil
}

func stringField(payload map[string]any, name string) string {
	s, _ := payload[name].(string)
	return strings.TrimSpace(s)
}

func listField(payload map[string]any, name string) []any {
	l, _ := payload[name].([]any)
	return l
}

// encodeAppMap renders the module map as compact JSON for prompt context.
func encodeAppMap(appMap types.AppMap) string {
	raw, err := json.Marshal(appMap)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// intentLine renders the intent as a single prompt-friendly line.
func intentLine(intent types.Intent) string {
	line := "goal: " + intent.Goal
	if intent.Target != "" {
		line += "; target: " + intent.Target
	}
	if len(intent.Constraints) > 0 {
		line += "; constraints: " + strings.Join(intent.Constraints, ", ")
	}
	return line
}
