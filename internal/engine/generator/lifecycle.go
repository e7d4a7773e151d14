package generator

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/zerr"
)

// WatchState is the phase shared by every Lifecycle built for one project.
// Passes of lifecycles sharing a state never overlap.
type WatchState struct {
	mu    sync.Mutex
	phase domain.WatchPhase
}

// NewWatchState creates an Idle state.
func NewWatchState() *WatchState {
	return &WatchState{phase: domain.PhaseIdle}
}

// Lifecycle drives a set of generators from the build tool's hooks.
//
// It is a two-state machine. BeforeRun only generates while Idle, so a
// one-shot build started inside a watch session does not regenerate what the
// session already produced. WatchRun enters WatchActive and WatchClose leaves it.
type Lifecycle struct {
	state      *WatchState
	generators []*Generator
}

// NewLifecycle creates a lifecycle with its own Idle state over generators, run in job-name order.
func NewLifecycle(generators ...*Generator) *Lifecycle {
	return NewSharedLifecycle(NewWatchState(), generators...)
}

// NewSharedLifecycle creates a lifecycle over generators whose phase is held by state.
func NewSharedLifecycle(state *WatchState, generators ...*Generator) *Lifecycle {
	sorted := slices.Clone(generators)
	slices.SortStableFunc(sorted, func(a, b *Generator) int {
		return cmp.Compare(a.job.Name, b.job.Name)
	})
	return &Lifecycle{
		state:      state,
		generators: sorted,
	}
}

// Jobs returns the jobs in run order.
func (l *Lifecycle) Jobs() []domain.Job {
	jobs := make([]domain.Job, len(l.generators))
	for i, g := range l.generators {
		jobs[i] = g.job
	}
	return jobs
}

// Phase reports the current state.
func (l *Lifecycle) Phase() domain.WatchPhase {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	return l.state.phase
}

// BeforeRun generates every artifact unless a watch session is active.
// It returns nil results when the pass was skipped.
func (l *Lifecycle) BeforeRun(ctx context.Context) ([]domain.Result, error) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	if l.state.phase == domain.PhaseWatchActive {
		return nil, nil
	}
	return l.runAll(ctx)
}

// WatchRun enters WatchActive and generates every artifact.
func (l *Lifecycle) WatchRun(ctx context.Context) ([]domain.Result, error) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	l.state.phase = domain.PhaseWatchActive
	return l.runAll(ctx)
}

// WatchClose returns to Idle.
func (l *Lifecycle) WatchClose() {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	l.state.phase = domain.PhaseIdle
}

// Check reports the status of every artifact without writing, whatever the phase.
func (l *Lifecycle) Check(ctx context.Context) (map[string]domain.ArtifactStatus, error) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	statuses := make(map[string]domain.ArtifactStatus, len(l.generators))
	for _, g := range l.generators {
		status, err := g.Check(ctx)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrGenerationFailed.Error())
		}
		statuses[g.job.Name] = status
	}
	return statuses, nil
}

// runAll runs the generators in order and stops at the first error. The caller holds the state lock.
func (l *Lifecycle) runAll(ctx context.Context) ([]domain.Result, error) {
	results := make([]domain.Result, 0, len(l.generators))
	for _, g := range l.generators {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := g.Run(ctx)
		if err != nil {
			return results, zerr.Wrap(err, domain.ErrGenerationFailed.Error())
		}
		results = append(results, result)
	}
	return results, nil
}
