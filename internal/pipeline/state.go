// Package pipeline orchestrates a design run: intent analysis, application
// cartography, parallel expert phases, synthesis, and a consistency check.
// Stage failures before the expert phases are fatal; individual expert and
// synthesis failures are contained and only reduce the artifact set.
package pipeline

import (
	"sync"

	"github.com/jonathan/design-solver/internal/types"
)

// Status is the lifecycle state of one run.
type Status string

// Run lifecycle states
const (
	StatusIdle      Status = "idle"
	StatusAnalyzing Status = "analyzing"
	StatusDesigning Status = "designing"
	StatusReady     Status = "ready"
	StatusError     Status = "error"
)

// Snapshot is an immutable view of run progress handed to observers.
// The artifact slice is a copy; observers may retain it freely. Intent and
// AppMap are nil until their stages complete, so a consumer can render the
// architecture map as soon as cartography lands.
type Snapshot struct {
	Status    Status           `json:"status"`
	Step      string           `json:"step"`
	Intent    *types.Intent    `json:"intent,omitempty"`
	AppMap    *types.AppMap    `json:"app_map,omitempty"`
	Artifacts []types.Artifact `json:"artifacts"`
	Error     string           `json:"error,omitempty"`
}

// UpdateFunc receives progress snapshots. Called synchronously under the
// run's lock, so invocations are ordered and artifact counts never regress.
type UpdateFunc func(Snapshot)

// runState carries the mutable state of one run. All mutation goes through
// methods holding mu, and every mutation emits a fresh snapshot.
type runState struct {
	mu        sync.Mutex
	status    Status
	step      string
	intent    *types.Intent
	appMap    *types.AppMap
	artifacts []types.Artifact
	errMsg    string
	emit      UpdateFunc
}

func newRunState(emit UpdateFunc) *runState {
	return &runState{status: StatusIdle, emit: emit}
}

// transition moves the run to a new status and step label.
func (s *runState) transition(status Status, step string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.step = step
	s.emitLocked()
}

// setIntent publishes the analyzed intent.
func (s *runState) setIntent(intent types.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intent = &intent
	s.emitLocked()
}

// setAppMap publishes the derived module map.
func (s *runState) setAppMap(appMap types.AppMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appMap = &appMap
	s.emitLocked()
}

// add appends an artifact and publishes the grown set atomically.
func (s *runState) add(a types.Artifact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts = append(s.artifacts, a)
	s.emitLocked()
}

// fail terminates the run with an error status.
func (s *runState) fail(step string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusError
	s.step = step
	s.errMsg = err.Error()
	s.emitLocked()
}

func (s *runState) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *runState) snapshotLocked() Snapshot {
	artifacts := make([]types.Artifact, len(s.artifacts))
	copy(artifacts, s.artifacts)
	return Snapshot{
		Status:    s.status,
		Step:      s.step,
		Intent:    s.intent,
		AppMap:    s.appMap,
		Artifacts: artifacts,
		Error:     s.errMsg,
	}
}

func (s *runState) emitLocked() {
	if s.emit != nil {
		s.emit(s.snapshotLocked())
	}
}
