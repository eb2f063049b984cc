package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/design-solver/internal/roles"
	"github.com/jonathan/design-solver/internal/types"
)

// lowConfidenceFloor marks artifacts worth flagging in the report.
const lowConfidenceFloor = 0.5

// checkConsistency cross-references the final artifact set, synthesis
// included, against the resolved roster and the module map. The check is
// advisory: issues go into the report, never into an error.
func (o *Orchestrator) checkConsistency(state *runState, resolved []roles.Role, appMap types.AppMap) *types.ConsistencyReport {
	snap := state.snapshot()

	var issues []string
	if len(appMap.Modules) == 0 {
		issues = append(issues, "application map defines no modules")
	}

	produced := make(map[string]bool, len(snap.Artifacts))
	for _, a := range snap.Artifacts {
		produced[a.Role] = true
		if a.Confidence < lowConfidenceFloor {
			issues = append(issues, fmt.Sprintf("%s reported low confidence (%.2f)", a.Role, a.Confidence))
		}
	}
	for _, r := range resolved {
		def := roles.MustLookup(r)
		if def.TaskKey == "" {
			continue
		}
		if !produced[def.Label] {
			issues = append(issues, fmt.Sprintf("%s produced no artifact", def.Label))
		}
	}
	if synth := roles.MustLookup(roles.Synthesis); !produced[synth.Label] {
		issues = append(issues, fmt.Sprintf("%s produced no artifact", synth.Label))
	}

	report := &types.ConsistencyReport{Issues: issues, OK: len(issues) == 0}

	summary := "No consistency issues detected across specialist outputs."
	if !report.OK {
		summary = fmt.Sprintf("%d consistency issue(s) detected across specialist outputs.", len(issues))
	}

	issueList := make([]any, len(issues))
	for i, issue := range issues {
		issueList[i] = issue
	}

	def := roles.MustLookup(roles.Consistency)
	state.add(types.Artifact{
		ID:      uuid.NewString(),
		Role:    def.Label,
		Title:   def.Title,
		Summary: summary,
		Type:    def.Type,
		Projection: map[string]any{
			"summary": summary,
			"issues":  issueList,
			"ok":      report.OK,
		},
		Confidence: 1,
	})
	return report
}
