package types

// ArtifactType tags an artifact with the structural kind of its projection.
// The tag deterministically selects which projection shape a rendering layer
// should expect.
type ArtifactType string

// Artifact kind tags
const (
	TypeText              ArtifactType = "text"
	TypeUXFlow            ArtifactType = "ux-flow"
	TypeUILayout          ArtifactType = "ui-layout"
	TypeDataSchema        ArtifactType = "data-schema"
	TypeComponentMap      ArtifactType = "component-map"
	TypeConsistencyReport ArtifactType = "consistency-report"
	TypePersonaProfile    ArtifactType = "persona-profile"
	TypeRiskAnalysis      ArtifactType = "risk-analysis"
	TypeMonetizationPlan  ArtifactType = "monetization-plan"
	TypeTechRoadmap       ArtifactType = "tech-roadmap"
	TypeGTMStrategy       ArtifactType = "gtm-strategy"
	TypeEstimationSpec    ArtifactType = "estimation-spec"
	TypeAPIContract       ArtifactType = "api-contract"
	TypePrototype         ArtifactType = "prototype"
)

// DefaultConfidence is assigned when a specialist payload omits an explicit
// confidence value.
const DefaultConfidence = 0.9

// Artifact is one unit of output produced by a specialist role or the
// synthesis stage. Immutable once created; IDs are unique within a run.
type Artifact struct {
	ID         string         `json:"id"`
	Role       string         `json:"role"`
	Title      string         `json:"title"`
	Summary    string         `json:"summary"`
	Content    string         `json:"content"`
	Type       ArtifactType   `json:"type"`
	Projection map[string]any `json:"projection,omitempty"`
	Confidence float64        `json:"confidence"`
}

// ClampConfidence forces a confidence value into the [0,1] range.
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
