package pipeline

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/design-solver/internal/llm"
	"github.com/jonathan/design-solver/internal/roles"
	"github.com/jonathan/design-solver/internal/types"
)

// Progress step labels, surfaced verbatim to observers.
const (
	StepIntent      = "Decrypting Intention..."
	StepCartography = "Mapping Architecture..."
	StepExperts     = "Engaging Expert Agents..."
	StepSynthesis   = "Synthesizing Visual Prototypes..."
	StepDone        = "Solution Fully Projected"
)

// Orchestrator drives design runs against an LLM client. It is stateless
// across runs; all per-run state lives in the run itself, so a single
// Orchestrator serves concurrent runs.
type Orchestrator struct {
	client llm.Client
	logger *log.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger overrides the destination for node failure logs.
func WithLogger(l *log.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// New creates an Orchestrator. Wrap the client in retry and cache decorators
// before passing it in; the orchestrator itself never retries.
func New(client llm.Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{client: client, logger: log.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Result is the complete outcome of one run.
type Result struct {
	Idea      types.Idea               `json:"idea"`
	Intent    types.Intent             `json:"intent"`
	AppMap    types.AppMap             `json:"app_map"`
	Artifacts []types.Artifact         `json:"artifacts"`
	Report    *types.ConsistencyReport `json:"report,omitempty"`
	Status    Status                   `json:"status"`
}

// Run executes the full pipeline for one idea. The emit callback, when
// non-nil, observes every state transition and artifact append in order.
//
// Intent and cartography failures abort the run with an error result.
// Expert and synthesis failures are isolated: they log, skip their artifact,
// and the run still finishes ready.
func (o *Orchestrator) Run(ctx context.Context, idea types.Idea, emit UpdateFunc) (*Result, error) {
	state := newRunState(emit)

	state.transition(StatusAnalyzing, StepIntent)
	intent, err := o.analyzeIntent(ctx, idea)
	if err != nil {
		state.fail(StepIntent, err)
		return o.result(state, idea, intent, types.AppMap{}, nil), err
	}
	state.setIntent(intent)

	state.transition(StatusAnalyzing, StepCartography)
	appMap, err := o.mapArchitecture(ctx, idea, intent)
	if err != nil {
		state.fail(StepCartography, err)
		return o.result(state, idea, intent, appMap, nil), err
	}
	state.setAppMap(appMap)

	resolved := roles.Resolve(idea.Mode, idea.Depth)
	state.transition(StatusDesigning, StepExperts)

	// Foundation experts run concurrently with no shared prompt context.
	o.runPhase(ctx, state, roles.Experts(resolved, roles.PhaseFoundation), intent, appMap, "")
	if err := ctx.Err(); err != nil {
		state.fail(StepExperts, err)
		return o.result(state, idea, intent, appMap, nil), err
	}

	// Enrichment experts see a digest of the foundation findings.
	digest := digestOf(state.snapshot().Artifacts)
	o.runPhase(ctx, state, roles.Experts(resolved, roles.PhaseEnrichment), intent, appMap, digest)
	if err := ctx.Err(); err != nil {
		state.fail(StepExperts, err)
		return o.result(state, idea, intent, appMap, nil), err
	}

	state.transition(StatusDesigning, StepSynthesis)
	o.synthesize(ctx, state, idea, appMap, digestOf(state.snapshot().Artifacts))
	if err := ctx.Err(); err != nil {
		state.fail(StepSynthesis, err)
		return o.result(state, idea, intent, appMap, nil), err
	}

	// The consistency check reads the final artifact set, so a failed
	// synthesis shows up in the report.
	var report *types.ConsistencyReport
	if contains(resolved, roles.Consistency) {
		report = o.checkConsistency(state, resolved, appMap)
	}

	state.transition(StatusReady, StepDone)
	return o.result(state, idea, intent, appMap, report), nil
}

// runPhase fans the given experts out in parallel and waits for all of
// them. Nodes always return nil so one failure never cancels its siblings.
func (o *Orchestrator) runPhase(ctx context.Context, state *runState, defs []roles.Definition, intent types.Intent, appMap types.AppMap, digest string) {
	g, gctx := errgroup.WithContext(ctx)
	for _, def := range defs {
		def := def
		g.Go(func() error {
			o.runExpert(gctx, state, def, intent, appMap, digest)
			return nil
		})
	}
	_ = g.Wait()
}

func (o *Orchestrator) result(state *runState, idea types.Idea, intent types.Intent, appMap types.AppMap, report *types.ConsistencyReport) *Result {
	snap := state.snapshot()
	return &Result{
		Idea:      idea,
		Intent:    intent,
		AppMap:    appMap,
		Artifacts: snap.Artifacts,
		Report:    report,
		Status:    snap.Status,
	}
}

func contains(resolved []roles.Role, r roles.Role) bool {
	for _, candidate := range resolved {
		if candidate == r {
			return true
		}
	}
	return false
}
