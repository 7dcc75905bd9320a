// Package domain contains the core domain model and scheduling logic for
// project plans: calendar dates, raw tasks, dependency ordering and the
// resolved schedule.
package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// Plan is the full ordered set of raw tasks for one resolution run. Tasks
// are held in a slice in input order with an id index alongside, so every
// pass over the plan is deterministic regardless of identifier values.
type Plan struct {
	name  string
	tasks []Task
	index map[ID]int
	order []int
}

// NewPlan creates an empty Plan with the given display name.
func NewPlan(name string) *Plan {
	return &Plan{
		name:  name,
		index: make(map[ID]int),
	}
}

// Name returns the plan's display name.
func (p *Plan) Name() string {
	return p.name
}

// Len returns the number of tasks in the plan.
func (p *Plan) Len() int {
	return len(p.tasks)
}

// AddTask appends a task to the plan, preserving insertion order.
// It returns an error if a task with the same id already exists.
func (p *Plan) AddTask(t Task) error {
	if _, exists := p.index[t.ID]; exists {
		return zerr.With(ErrTaskAlreadyExists, "task", t.ID.String())
	}
	p.index[t.ID] = len(p.tasks)
	p.tasks = append(p.tasks, t)
	return nil
}

// Task returns the task with the given id.
func (p *Plan) Task(id ID) (Task, bool) {
	i, ok := p.index[id]
	if !ok {
		return Task{}, false
	}
	return p.tasks[i], true
}

// Validate checks dependency references and determines the processing order.
// Every dependency id must name a task in the plan; that is verified first,
// before any ordering work. Ordering then runs as a fixed-point relaxation:
// repeated passes over the tasks in input order, resolving any task whose
// dependencies are all resolved, until a pass makes no progress. Tasks left
// over at that point form a cycle. The resulting order depends only on input
// order, never on identifier hashing.
func (p *Plan) Validate() error {
	for i := range p.tasks {
		for _, dep := range p.tasks[i].Dependencies {
			if _, ok := p.index[dep]; !ok {
				err := zerr.With(ErrUnknownDependency, "task", p.tasks[i].ID.String())
				return zerr.With(err, "dependency", dep.String())
			}
		}
	}

	resolved := make([]bool, len(p.tasks))
	order := make([]int, 0, len(p.tasks))
	remaining := len(p.tasks)

	for remaining > 0 {
		progressed := false
		for i := range p.tasks {
			if resolved[i] {
				continue
			}
			ready := true
			for _, dep := range p.tasks[i].Dependencies {
				if !resolved[p.index[dep]] {
					ready = false
					break
				}
			}
			if !ready {
				continue
			}
			resolved[i] = true
			order = append(order, i)
			remaining--
			progressed = true
		}
		if !progressed {
			break
		}
	}

	if remaining > 0 {
		stuck := make([]string, 0, remaining)
		for i := range p.tasks {
			if !resolved[i] {
				stuck = append(stuck, p.tasks[i].ID.String())
			}
		}
		return zerr.With(ErrCycleDetected, "tasks", strings.Join(stuck, ", "))
	}

	p.order = order
	return nil
}

// Walk returns an iterator that yields tasks in processing order.
// It assumes Validate has been called and returned nil.
func (p *Plan) Walk() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, i := range p.order {
			if !yield(p.tasks[i]) {
				return
			}
		}
	}
}
