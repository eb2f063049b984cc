package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/design-solver/internal/types"
)

func TestResolve_BaselineAlwaysPresent(t *testing.T) {
	for _, mode := range []types.Mode{types.ModeIdea, types.ModeMVP, types.ModeScale} {
		for _, depth := range []types.Depth{types.DepthQuick, types.DepthStandard, types.DepthDeep} {
			resolved := Resolve(mode, depth)
			assert.Contains(t, resolved, Intent, "%s/%s", mode, depth)
			assert.Contains(t, resolved, Cartographer, "%s/%s", mode, depth)
			assert.Contains(t, resolved, UX, "%s/%s", mode, depth)
			assert.Contains(t, resolved, UI, "%s/%s", mode, depth)
		}
	}
}

func TestResolve_QuickIsExactlyBaseline(t *testing.T) {
	for _, mode := range []types.Mode{types.ModeIdea, types.ModeMVP, types.ModeScale} {
		resolved := Resolve(mode, types.DepthQuick)
		assert.Equal(t, []Role{Intent, Cartographer, UX, UI}, resolved, string(mode))
	}
}

func TestResolve_StandardAddsStructureRoles(t *testing.T) {
	resolved := Resolve(types.ModeIdea, types.DepthStandard)

	assert.Contains(t, resolved, Component)
	assert.Contains(t, resolved, Data)
	assert.Contains(t, resolved, Consistency)
	assert.NotContains(t, resolved, Simplifier)
	assert.NotContains(t, resolved, Persona)
	assert.NotContains(t, resolved, Risk)
}

func TestResolve_DeepMVP(t *testing.T) {
	resolved := Resolve(types.ModeMVP, types.DepthDeep)

	assert.Contains(t, resolved, Simplifier)
	assert.Contains(t, resolved, Persona)
	assert.Contains(t, resolved, TechStack)
	assert.Contains(t, resolved, Pricing)
	assert.NotContains(t, resolved, Risk)
	assert.NotContains(t, resolved, Estimation)
	assert.NotContains(t, resolved, GTM)
}

func TestResolve_DeepScale(t *testing.T) {
	resolved := Resolve(types.ModeScale, types.DepthDeep)

	assert.Contains(t, resolved, Risk)
	assert.Contains(t, resolved, Estimation)
	assert.Contains(t, resolved, GTM)
	assert.NotContains(t, resolved, TechStack)
	assert.NotContains(t, resolved, Pricing)
}

func TestResolve_APIContractNeverSelected(t *testing.T) {
	for _, mode := range []types.Mode{types.ModeIdea, types.ModeMVP, types.ModeScale} {
		for _, depth := range []types.Depth{types.DepthQuick, types.DepthStandard, types.DepthDeep} {
			assert.NotContains(t, Resolve(mode, depth), APIContract, "%s/%s", mode, depth)
		}
	}
}

func TestResolve_DerivationOrder(t *testing.T) {
	assert.Equal(t,
		[]Role{Intent, Cartographer, UX, UI, Component, Data, Consistency, Simplifier, Persona, Risk, Estimation, GTM},
		Resolve(types.ModeScale, types.DepthDeep),
		"baseline, then depth additions, then mode additions")

	assert.Equal(t,
		[]Role{Intent, Cartographer, UX, UI, Component, Data, Consistency, Simplifier, Persona, TechStack, Pricing},
		Resolve(types.ModeMVP, types.DepthDeep))

	assert.Equal(t,
		[]Role{Intent, Cartographer, UX, UI, Component, Data, Consistency},
		Resolve(types.ModeIdea, types.DepthStandard))
}

func TestResolve_Deterministic(t *testing.T) {
	first := Resolve(types.ModeScale, types.DepthDeep)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Resolve(types.ModeScale, types.DepthDeep))
	}
}

func TestResolve_DepthWidensRoster(t *testing.T) {
	for _, mode := range []types.Mode{types.ModeIdea, types.ModeMVP, types.ModeScale} {
		quick := len(Resolve(mode, types.DepthQuick))
		standard := len(Resolve(mode, types.DepthStandard))
		deep := len(Resolve(mode, types.DepthDeep))
		assert.Less(t, quick, standard, string(mode))
		assert.Less(t, standard, deep, string(mode))
	}
}

func TestExperts_PhaseSplit(t *testing.T) {
	resolved := Resolve(types.ModeScale, types.DepthDeep)

	foundation := Experts(resolved, PhaseFoundation)
	enrichment := Experts(resolved, PhaseEnrichment)

	var foundationRoles, enrichmentRoles []Role
	for _, def := range foundation {
		foundationRoles = append(foundationRoles, def.Role)
	}
	for _, def := range enrichment {
		enrichmentRoles = append(enrichmentRoles, def.Role)
	}

	assert.ElementsMatch(t, []Role{UX, UI, Persona}, foundationRoles)
	assert.ElementsMatch(t, []Role{Data, Component, Simplifier, Risk, Estimation, GTM}, enrichmentRoles)
}

func TestExperts_ExcludesStageRoles(t *testing.T) {
	resolved := Resolve(types.ModeIdea, types.DepthStandard)

	for _, phase := range []Phase{PhaseFoundation, PhaseEnrichment} {
		for _, def := range Experts(resolved, phase) {
			assert.NotEqual(t, Intent, def.Role)
			assert.NotEqual(t, Cartographer, def.Role)
			assert.NotEqual(t, Consistency, def.Role)
			assert.NotEmpty(t, def.TaskKey)
			require.NotNil(t, def.Schema)
		}
	}
}

func TestRegistry_EveryExpertHasSchemaAndLabel(t *testing.T) {
	for _, def := range All() {
		assert.NotEmpty(t, def.Label, string(def.Role))
		assert.NotEmpty(t, def.Title, string(def.Role))
		if def.TaskKey != "" {
			require.NotNil(t, def.Schema, string(def.Role))
			assert.NotEqual(t, PhaseNone, def.Phase, string(def.Role))
		}
	}
}

func TestLookup_UnknownRole(t *testing.T) {
	_, err := Lookup(Role("astrologer"))
	assert.Error(t, err)

	def, err := Lookup(UX)
	require.NoError(t, err)
	assert.Equal(t, "UX Expert", def.Label)
	assert.Equal(t, types.TypeUXFlow, def.Type)
}
