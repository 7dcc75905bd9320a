// Package scheduler resolves task plans into concrete schedules.
package scheduler

import (
	"context"
	"slices"
	"strings"

	"github.com/kylemshaw/ganttify/internal/core/domain"
	"github.com/kylemshaw/ganttify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scheduler turns a validated task plan into a resolved schedule.
type Scheduler struct {
	tracer ports.Tracer
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(tracer ports.Tracer) *Scheduler {
	return &Scheduler{tracer: tracer}
}

// Resolve computes an effective start and an end date for every task in
// the plan. It validates the plan first and returns an error without a
// schedule if validation fails or a task carries a non-positive duration.
// The same plan always resolves to the same schedule.
func (s *Scheduler) Resolve(ctx context.Context, plan *domain.Plan) (*domain.Schedule, error) {
	_, span := s.tracer.Start(ctx, "resolve", ports.WithAttributes(map[string]any{
		"plan":  plan.Name(),
		"tasks": plan.Len(),
	}))
	defer span.End()

	// Validation runs up front so a broken plan never produces a
	// partial schedule.
	if err := plan.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	state := newResolveState(plan.Len())
	for task := range plan.Walk() {
		resolved, err := state.resolveTask(task)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		state.record(resolved)
	}

	schedule := &domain.Schedule{Name: plan.Name(), Tasks: state.finish()}
	span.SetAttribute("schedule.digest", schedule.Digest())
	return schedule, nil
}

type resolveState struct {
	done   map[domain.ID]domain.ResolvedTask
	ledger *Ledger
	out    []domain.ResolvedTask
}

func newResolveState(capacity int) *resolveState {
	return &resolveState{
		done:   make(map[domain.ID]domain.ResolvedTask, capacity),
		ledger: NewLedger(),
		out:    make([]domain.ResolvedTask, 0, capacity),
	}
}

// resolveTask applies the scheduling constraints in their fixed order:
// the declared start first, then dependency completion, then resource
// availability, with the weekend snap last.
func (state *resolveState) resolveTask(task domain.Task) (domain.ResolvedTask, error) {
	start := task.Start

	// Step 1: wait for the slowest dependency to finish.
	if latest, ok := state.latestDependencyEnd(task); ok {
		start = laterOf(start, domain.DayAfter(latest))
	}

	// Step 2: wait for the task's resource to free up.
	if !task.Resource.IsZero() {
		if end, ok := state.ledger.EarliestAvailable(task.Resource); ok {
			start = laterOf(start, domain.DayAfter(end))
		}
	}

	// Step 3: snap onto the working week. This happens after the other
	// constraints so a date pushed onto a weekend is still corrected.
	start = domain.NextWorkingDay(start)

	// Step 4: walk forward through working days to find the end.
	end, err := domain.AddWorkingDays(start, task.Duration)
	if err != nil {
		return domain.ResolvedTask{}, zerr.With(err, "task", task.ID.String())
	}

	return domain.ResolvedTask{
		Task:             task,
		EffectiveStart:   start,
		End:              end,
		CalendarDuration: domain.CalendarSpan(start, end),
	}, nil
}

// latestDependencyEnd returns the maximum end date among the task's
// resolved dependencies. ok is false for tasks without dependencies.
func (state *resolveState) latestDependencyEnd(task domain.Task) (latest domain.Date, ok bool) {
	for _, dep := range task.Dependencies {
		resolved, done := state.done[dep]
		if !done {
			continue
		}
		if !ok || resolved.End.After(latest) {
			latest = resolved.End
			ok = true
		}
	}
	return latest, ok
}

func (state *resolveState) record(task domain.ResolvedTask) {
	state.done[task.ID] = task
	state.out = append(state.out, task)
	if !task.Resource.IsZero() {
		state.ledger.Commit(task.Resource, task.End)
	}
}

// finish orders the tasks for presentation: by resource name ascending
// with unassigned tasks last, then by effective start within a resource.
func (state *resolveState) finish() []domain.ResolvedTask {
	slices.SortStableFunc(state.out, compareForPresentation)
	return state.out
}

func compareForPresentation(a, b domain.ResolvedTask) int {
	if c := compareResources(a.Resource, b.Resource); c != 0 {
		return c
	}
	return a.EffectiveStart.Compare(b.EffectiveStart)
}

func compareResources(a, b domain.Resource) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return strings.Compare(a.String(), b.String())
}

func laterOf(a, b domain.Date) domain.Date {
	if b.After(a) {
		return b
	}
	return a
}
