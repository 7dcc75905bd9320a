package scheduler_test

import (
	"context"
	"testing"

	"github.com/kylemshaw/ganttify/internal/core/domain"
	"github.com/kylemshaw/ganttify/internal/core/ports"
	"github.com/kylemshaw/ganttify/internal/core/ports/mocks"
	"github.com/kylemshaw/ganttify/internal/engine/scheduler"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// setupSchedulerTest creates a scheduler with a permissive mock tracer.
func setupSchedulerTest(t *testing.T) *scheduler.Scheduler {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockSpan := mocks.NewMockSpan(ctrl)
	mockSpan.EXPECT().End().AnyTimes()
	mockSpan.EXPECT().RecordError(gomock.Any()).AnyTimes()
	mockSpan.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)

	// Start has variadic signature: Start(ctx, name, ...opts).
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, mockSpan
		},
	).AnyTimes()

	return scheduler.NewScheduler(tracer)
}

// makeTask builds a task from compact literals.
// deps are ids of tasks that must finish first.
func makeTask(t *testing.T, id, start string, duration int, resource string, deps ...string) domain.Task {
	t.Helper()
	day, err := domain.ParseDate(start)
	require.NoError(t, err)

	return domain.Task{
		ID:           domain.NewID(id),
		Title:        id,
		Start:        day,
		Duration:     duration,
		Dependencies: domain.NewIDs(deps),
		Resource:     domain.NewResource(resource),
	}
}

func buildPlan(t *testing.T, tasks ...domain.Task) *domain.Plan {
	t.Helper()
	p := domain.NewPlan("demo")
	for _, task := range tasks {
		require.NoError(t, p.AddTask(task))
	}
	return p
}

func findTask(t *testing.T, s *domain.Schedule, id string) domain.ResolvedTask {
	t.Helper()
	for _, task := range s.Tasks {
		if task.ID == domain.NewID(id) {
			return task
		}
	}
	t.Fatalf("task %s not in schedule", id)
	return domain.ResolvedTask{}
}

func TestScheduler_Resolve_DependencyAndResourceChain(t *testing.T) {
	s := setupSchedulerTest(t)

	// A runs Thu-Wed across one weekend. B waits for A. C waits for A
	// too, but B's resource pushes it out further than the dependency.
	plan := buildPlan(t,
		makeTask(t, "A", "2024-08-01", 5, ""),
		makeTask(t, "B", "2024-08-01", 4, "rig", "A"),
		makeTask(t, "C", "2024-08-08", 6, "rig", "A"),
	)

	schedule, err := s.Resolve(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, schedule.Tasks, 3)

	a := findTask(t, schedule, "A")
	require.Equal(t, "2024-08-01", a.EffectiveStart.String())
	require.Equal(t, "2024-08-07", a.End.String())
	require.Equal(t, 7, a.CalendarDuration)

	b := findTask(t, schedule, "B")
	require.Equal(t, "2024-08-08", b.EffectiveStart.String())
	require.Equal(t, "2024-08-13", b.End.String())
	require.Equal(t, 6, b.CalendarDuration)

	c := findTask(t, schedule, "C")
	require.Equal(t, "2024-08-14", c.EffectiveStart.String())
	require.Equal(t, "2024-08-21", c.End.String())
	require.Equal(t, 8, c.CalendarDuration)

	// Presentation order groups by resource first, unassigned last.
	got := make([]string, len(schedule.Tasks))
	for i, task := range schedule.Tasks {
		got[i] = task.ID.String()
	}
	require.Equal(t, []string{"B", "C", "A"}, got)
}

func TestScheduler_Resolve_WeekendStartSnaps(t *testing.T) {
	s := setupSchedulerTest(t)

	// 2024-08-03 is a Saturday.
	plan := buildPlan(t, makeTask(t, "A", "2024-08-03", 1, ""))

	schedule, err := s.Resolve(context.Background(), plan)
	require.NoError(t, err)

	a := findTask(t, schedule, "A")
	require.Equal(t, "2024-08-05", a.EffectiveStart.String())
	require.Equal(t, "2024-08-05", a.End.String())
	require.Equal(t, 1, a.CalendarDuration)
}

func TestScheduler_Resolve_DependencyPushOntoWeekendSnaps(t *testing.T) {
	s := setupSchedulerTest(t)

	// A ends on Friday 2024-08-02, so B's earliest day is Saturday.
	// The snap runs after the dependency constraint and lands on Monday.
	plan := buildPlan(t,
		makeTask(t, "A", "2024-07-29", 5, ""),
		makeTask(t, "B", "2024-07-29", 1, "", "A"),
	)

	schedule, err := s.Resolve(context.Background(), plan)
	require.NoError(t, err)

	a := findTask(t, schedule, "A")
	require.Equal(t, "2024-08-02", a.End.String())

	b := findTask(t, schedule, "B")
	require.Equal(t, "2024-08-05", b.EffectiveStart.String())
	require.True(t, b.EffectiveStart.After(a.End))
}

func TestScheduler_Resolve_ResourceSerialization(t *testing.T) {
	s := setupSchedulerTest(t)

	// Both tasks want the same Monday and the same resource. The one
	// earlier in input order wins the slot, the other queues behind it.
	plan := buildPlan(t,
		makeTask(t, "first", "2024-08-05", 2, "alice"),
		makeTask(t, "second", "2024-08-05", 2, "alice"),
	)

	schedule, err := s.Resolve(context.Background(), plan)
	require.NoError(t, err)

	first := findTask(t, schedule, "first")
	require.Equal(t, "2024-08-05", first.EffectiveStart.String())
	require.Equal(t, "2024-08-06", first.End.String())

	second := findTask(t, schedule, "second")
	require.Equal(t, "2024-08-07", second.EffectiveStart.String())
	require.Equal(t, "2024-08-08", second.End.String())
	require.True(t, second.EffectiveStart.After(first.End))
}

func TestScheduler_Resolve_SingleDayTask(t *testing.T) {
	s := setupSchedulerTest(t)

	plan := buildPlan(t, makeTask(t, "A", "2024-08-06", 1, ""))

	schedule, err := s.Resolve(context.Background(), plan)
	require.NoError(t, err)

	a := findTask(t, schedule, "A")
	require.True(t, a.End.Equal(a.EffectiveStart))
	require.Equal(t, 1, a.CalendarDuration)
}

func TestScheduler_Resolve_InvalidDuration(t *testing.T) {
	s := setupSchedulerTest(t)

	plan := buildPlan(t, makeTask(t, "A", "2024-08-06", 0, ""))

	schedule, err := s.Resolve(context.Background(), plan)
	require.ErrorIs(t, err, domain.ErrInvalidDuration)
	require.Nil(t, schedule)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	require.Equal(t, "A", zErr.Metadata()["task"])
	require.Equal(t, 0, zErr.Metadata()["duration"])
}

func TestScheduler_Resolve_UnknownDependency(t *testing.T) {
	s := setupSchedulerTest(t)

	plan := buildPlan(t, makeTask(t, "A", "2024-08-06", 1, "", "ghost"))

	schedule, err := s.Resolve(context.Background(), plan)
	require.ErrorIs(t, err, domain.ErrUnknownDependency)
	require.Nil(t, schedule)
}

func TestScheduler_Resolve_Cycle(t *testing.T) {
	s := setupSchedulerTest(t)

	plan := buildPlan(t,
		makeTask(t, "A", "2024-08-06", 1, "", "B"),
		makeTask(t, "B", "2024-08-06", 1, "", "A"),
	)

	schedule, err := s.Resolve(context.Background(), plan)
	require.ErrorIs(t, err, domain.ErrCycleDetected)
	require.Nil(t, schedule)
}

func TestScheduler_Resolve_Deterministic(t *testing.T) {
	s := setupSchedulerTest(t)

	build := func() *domain.Plan {
		return buildPlan(t,
			makeTask(t, "A", "2024-08-01", 5, ""),
			makeTask(t, "B", "2024-08-01", 4, "rig", "A"),
			makeTask(t, "C", "2024-08-08", 6, "rig", "A"),
			makeTask(t, "D", "2024-08-01", 2, "lab"),
		)
	}

	first, err := s.Resolve(context.Background(), build())
	require.NoError(t, err)

	second, err := s.Resolve(context.Background(), build())
	require.NoError(t, err)

	require.Equal(t, first.Tasks, second.Tasks)
	require.Equal(t, first.Digest(), second.Digest())
}

func TestScheduler_Resolve_ScheduleInvariants(t *testing.T) {
	s := setupSchedulerTest(t)

	plan := buildPlan(t,
		makeTask(t, "A", "2024-08-01", 5, "rig"),
		makeTask(t, "B", "2024-08-02", 3, "rig", "A"),
		makeTask(t, "C", "2024-08-03", 9, "lab"),
		makeTask(t, "D", "2024-08-01", 1, "", "B", "C"),
		makeTask(t, "E", "2024-08-10", 2, "lab"),
	)

	schedule, err := s.Resolve(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, schedule.Tasks, 5)

	for _, task := range schedule.Tasks {
		require.False(t, domain.IsWeekend(task.EffectiveStart),
			"task %s starts on a weekend", task.ID)
		require.False(t, task.EffectiveStart.Before(task.Start),
			"task %s starts before its declared start", task.ID)
		require.Equal(t, task.EffectiveStart.DaysUntil(task.End)+1, task.CalendarDuration,
			"task %s has an inconsistent calendar duration", task.ID)

		for _, dep := range task.Dependencies {
			require.True(t, task.EffectiveStart.After(findTask(t, schedule, dep.String()).End),
				"task %s overlaps its dependency %s", task.ID, dep)
		}
	}

	// Tasks sharing a resource never overlap.
	byResource := make(map[domain.Resource][]domain.ResolvedTask)
	for _, task := range schedule.Tasks {
		if !task.Resource.IsZero() {
			byResource[task.Resource] = append(byResource[task.Resource], task)
		}
	}
	for resource, tasks := range byResource {
		for i := 1; i < len(tasks); i++ {
			require.True(t, tasks[i].EffectiveStart.After(tasks[i-1].End),
				"resource %s is double booked", resource)
		}
	}
}
