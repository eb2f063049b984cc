// Package roles defines the specialist role taxonomy and the policy that
// selects which roles participate in a run. Adding a role means adding one
// registry entry; the pipeline discovers everything else from it.
package roles

import (
	"fmt"

	"github.com/jonathan/design-solver/internal/schema"
	"github.com/jonathan/design-solver/internal/types"
)

// Role identifies one specialist in the taxonomy.
type Role string

// Specialist roles
const (
	Intent       Role = "intent"
	Cartographer Role = "cartographer"
	UX           Role = "ux"
	UI           Role = "ui"
	Data         Role = "data"
	Component    Role = "component"
	Persona      Role = "persona"
	Risk         Role = "risk"
	Simplifier   Role = "simplifier"
	Pricing      Role = "pricing"
	GTM          Role = "gtm"
	TechStack    Role = "tech-stack"
	Estimation   Role = "estimation"
	APIContract  Role = "api-contract"
	Consistency  Role = "consistency"
	Synthesis    Role = "synthesis"
)

// Phase orders expert execution. Foundation experts run first in parallel;
// enrichment experts run afterwards and may read foundation findings.
type Phase int

// Expert phases
const (
	PhaseNone Phase = iota
	PhaseFoundation
	PhaseEnrichment
)

// Definition is one registry entry: everything the pipeline needs to run a
// role as an expert node. Stage roles (intent, cartographer, consistency,
// synthesis) carry a label and artifact type but no task key.
type Definition struct {
	Role  Role
	Label string
	Title string
	Type  types.ArtifactType
	Phase Phase

	// TaskKey selects the role's task prompt in experts.json.
	TaskKey string
	Schema  *schema.Schema
}

// registry is the single source of truth for the taxonomy. Order here is
// the canonical ordering used everywhere roles are enumerated.
var registry = []Definition{
	{Role: Intent, Label: "Intent Analyst", Title: "Product Intent", Type: types.TypeText},
	{Role: Cartographer, Label: "Product Cartographer", Title: "Application Map", Type: types.TypeText},
	{
		Role: UX, Label: "UX Expert", Title: "User Journey",
		Type: types.TypeUXFlow, Phase: PhaseFoundation, TaskKey: "ux",
		Schema: schema.New("ux-flow",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "steps", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{
		Role: UI, Label: "UI Expert", Title: "Interface Layout",
		Type: types.TypeUILayout, Phase: PhaseFoundation, TaskKey: "ui",
		Schema: schema.New("ui-layout",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "layout", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{
		Role: Persona, Label: "Persona Specialist", Title: "Target Personas",
		Type: types.TypePersonaProfile, Phase: PhaseFoundation, TaskKey: "persona",
		Schema: schema.New("persona-profile",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "personas", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{
		Role: Data, Label: "Data Architect", Title: "Data Model",
		Type: types.TypeDataSchema, Phase: PhaseEnrichment, TaskKey: "data",
		Schema: schema.New("data-schema",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "entities", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{
		Role: Component, Label: "Component Expert", Title: "Component Map",
		Type: types.TypeComponentMap, Phase: PhaseEnrichment, TaskKey: "component",
		Schema: schema.New("component-map",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "components", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{
		Role: Simplifier, Label: "Simplification Expert", Title: "Scope Reduction",
		Type: types.TypeText, Phase: PhaseEnrichment, TaskKey: "simplifier",
		Schema: schema.New("simplifier",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "recommendations", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{
		Role: Risk, Label: "Risk & Complexity Analyst", Title: "Risk Analysis",
		Type: types.TypeRiskAnalysis, Phase: PhaseEnrichment, TaskKey: "risk",
		Schema: schema.New("risk-analysis",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "risks", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{
		Role: Pricing, Label: "Monetization Strategist", Title: "Monetization Plan",
		Type: types.TypeMonetizationPlan, Phase: PhaseEnrichment, TaskKey: "pricing",
		Schema: schema.New("monetization-plan",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "tiers", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{
		Role: GTM, Label: "Go-To-Market Lead", Title: "Go-To-Market Strategy",
		Type: types.TypeGTMStrategy, Phase: PhaseEnrichment, TaskKey: "gtm",
		Schema: schema.New("gtm-strategy",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "channels", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{
		Role: TechStack, Label: "Tech Stack Architect", Title: "Technology Roadmap",
		Type: types.TypeTechRoadmap, Phase: PhaseEnrichment, TaskKey: "tech-stack",
		Schema: schema.New("tech-roadmap",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "stack", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{
		Role: Estimation, Label: "Estimation Lead", Title: "Effort Estimates",
		Type: types.TypeEstimationSpec, Phase: PhaseEnrichment, TaskKey: "estimation",
		Schema: schema.New("estimation-spec",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "estimates", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{
		Role: APIContract, Label: "API Contract Designer", Title: "API Contract",
		Type: types.TypeAPIContract, Phase: PhaseEnrichment, TaskKey: "api-contract",
		Schema: schema.New("api-contract",
			schema.Field{Name: "summary", Type: schema.String, Required: true, Default: ""},
			schema.Field{Name: "endpoints", Type: schema.List, Required: true, Default: []any{}},
		),
	},
	{Role: Consistency, Label: "Consistency Guardian", Title: "Consistency Report", Type: types.TypeConsistencyReport},
	{Role: Synthesis, Label: "Synthesis Expert", Title: "Interactive Prototype", Type: types.TypePrototype},
}

var byRole = func() map[Role]Definition {
	m := make(map[Role]Definition, len(registry))
	for _, def := range registry {
		m[def.Role] = def
	}
	return m
}()

// Lookup returns the registry entry for a role.
func Lookup(r Role) (Definition, error) {
	def, ok := byRole[r]
	if !ok {
		return Definition{}, fmt.Errorf("unknown role %q", r)
	}
	return def, nil
}

// MustLookup returns the registry entry for a role, panicking when the role
// is not registered. Use only with roles the resolver produced.
func MustLookup(r Role) Definition {
	def, err := Lookup(r)
	if err != nil {
		panic(err)
	}
	return def
}

// All returns every registry entry in canonical order.
func All() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}
