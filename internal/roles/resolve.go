package roles

import "github.com/jonathan/design-solver/internal/types"

// Resolve selects the roles participating in a run, determined entirely by
// the (mode, depth) pair. Roles are listed in derivation order: the
// baseline of intent, cartographer, UX and UI first, then the depth
// additions, then the mode additions.
//
// Depth widens the roster for every mode; mode only differentiates at deep
// depth, where MVP runs gain delivery planning and scale runs gain growth
// planning. API contract design stays in the taxonomy but is not selected
// by any current combination.
func Resolve(mode types.Mode, depth types.Depth) []Role {
	resolved := []Role{Intent, Cartographer, UX, UI}

	if depth != types.DepthQuick {
		resolved = append(resolved, Component, Data, Consistency)
	}

	if depth == types.DepthDeep {
		resolved = append(resolved, Simplifier, Persona)

		switch mode {
		case types.ModeMVP:
			resolved = append(resolved, TechStack, Pricing)
		case types.ModeScale:
			resolved = append(resolved, Risk, Estimation, GTM)
		}
	}
	return resolved
}

// Experts filters a resolved roster down to expert node definitions in the
// given phase, dropping the stage roles the orchestrator runs itself.
func Experts(resolved []Role, phase Phase) []Definition {
	var out []Definition
	for _, r := range resolved {
		def := byRole[r]
		if def.TaskKey != "" && def.Phase == phase {
			out = append(out, def)
		}
	}
	return out
}
