// Package types provides type definitions for structured data used throughout the design-solver system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Mode selects the project objective for a run: a raw idea exploration,
// an MVP plan, or a scale-out plan. Together with Depth it fully determines
// which specialist roles participate in a run.
type Mode string

// Supported project modes
const (
	ModeIdea  Mode = "idea"
	ModeMVP   Mode = "mvp"
	ModeScale Mode = "scale"
)

// Depth selects the strategy depth for a run.
type Depth string

// Supported strategy depths
const (
	DepthQuick    Depth = "quick"
	DepthStandard Depth = "standard"
	DepthDeep     Depth = "deep"
)

// ParseMode validates and converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeIdea, ModeMVP, ModeScale:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid mode %q: must be one of idea, mvp, scale", s)
}

// ParseDepth validates and converts a string into a Depth.
func ParseDepth(s string) (Depth, error) {
	switch Depth(s) {
	case DepthQuick, DepthStandard, DepthDeep:
		return Depth(s), nil
	}
	return "", fmt.Errorf("invalid depth %q: must be one of quick, standard, deep", s)
}

// Idea is the immutable input for one pipeline run: the raw product idea
// text plus the two tuning knobs. Created once per run and never mutated.
type Idea struct {
	Raw   string `json:"raw"`
	Mode  Mode   `json:"mode"`
	Depth Depth  `json:"depth"`
}
