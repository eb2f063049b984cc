package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/design-solver/internal/llm"
	"github.com/jonathan/design-solver/internal/prompts"
	"github.com/jonathan/design-solver/internal/roles"
	"github.com/jonathan/design-solver/internal/types"
)

// styleByMode picks the visual direction for the synthesized prototype.
var styleByMode = map[types.Mode]string{
	types.ModeIdea:  "Material Design 3 Glassmorphism: frosted panels, soft gradients, generous whitespace.",
	types.ModeMVP:   "Cyber-Technical: dark surfaces, monospace accents, dense data panels.",
	types.ModeScale: "Brutalist Editorial: stark typography, hard grid, high contrast.",
}

// synthesize renders the run's findings into a single interactive prototype
// artifact. Failure here is contained like an expert failure: the run still
// reaches ready, just without a prototype.
func (o *Orchestrator) synthesize(ctx context.Context, state *runState, idea types.Idea, appMap types.AppMap, digest string) {
	def := roles.MustLookup(roles.Synthesis)

	tpl := prompts.MustGet("synthesis.json", "prototype")
	prompt := prompts.Format(tpl, map[string]string{
		"Idea":   idea.Raw,
		"Style":  styleByMode[idea.Mode],
		"AppMap": encodeAppMap(appMap),
		"Digest": digest,
	})

	html, err := o.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		o.logger.Printf("synthesis failed, run completes without a prototype: %v", err)
		return
	}

	state.add(types.Artifact{
		ID:         uuid.NewString(),
		Role:       def.Label,
		Title:      def.Title,
		Summary:    "High-fidelity interactive prototype of the proposed product.",
		Content:    llm.CleanJSONBlock(html),
		Type:       def.Type,
		Confidence: types.DefaultConfidence,
	})
}
