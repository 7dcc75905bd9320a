package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/kylemshaw/ganttify/internal/core/domain"
	"go.trai.ch/zerr"
)

func newTask(id string, deps ...string) domain.Task {
	return domain.Task{
		ID:           domain.NewID(id),
		Title:        id,
		Start:        domain.NewDate(2024, time.August, 1),
		Duration:     1,
		Dependencies: domain.NewIDs(deps),
	}
}

func TestPlan_AddTask(t *testing.T) {
	p := domain.NewPlan("demo")

	if err := p.AddTask(newTask("A")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := p.AddTask(newTask("A")); err == nil {
		t.Error("expected error when adding duplicate task, got nil")
	} else {
		zErr, ok := err.(*zerr.Error)
		if !ok {
			t.Fatalf("expected *zerr.Error, got %T", err)
		}
		if task, ok := zErr.Metadata()["task"].(string); !ok || task != "A" {
			t.Errorf("expected metadata task=A, got %v", zErr.Metadata()["task"])
		}
	}
}

func TestPlan_Validate_UnknownDependency(t *testing.T) {
	p := domain.NewPlan("demo")
	if err := p.AddTask(newTask("A", "ghost")); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	err := p.Validate()
	if err == nil {
		t.Fatal("expected error for unknown dependency, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}

	meta := zErr.Metadata()
	if task, ok := meta["task"].(string); !ok || task != "A" {
		t.Errorf("expected metadata task=A, got %v", meta["task"])
	}
	if dep, ok := meta["dependency"].(string); !ok || dep != "ghost" {
		t.Errorf("expected metadata dependency=ghost, got %v", meta["dependency"])
	}
}

func TestPlan_Validate_Cycle(t *testing.T) {
	p := domain.NewPlan("demo")
	if err := p.AddTask(newTask("A", "B")); err != nil {
		t.Fatalf("failed to add task A: %v", err)
	}
	if err := p.AddTask(newTask("B", "A")); err != nil {
		t.Fatalf("failed to add task B: %v", err)
	}
	if err := p.AddTask(newTask("C")); err != nil {
		t.Fatalf("failed to add task C: %v", err)
	}

	err := p.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}

	stuck, ok := zErr.Metadata()["tasks"].(string)
	if !ok || stuck == "" {
		t.Fatalf("expected metadata tasks to be a non-empty string, got %v", zErr.Metadata()["tasks"])
	}
	if !strings.Contains(stuck, "A") || !strings.Contains(stuck, "B") {
		t.Errorf("expected both cycle members in %q", stuck)
	}
	if strings.Contains(stuck, "C") {
		t.Errorf("task C is not part of the cycle, got %q", stuck)
	}
}

func TestPlan_Validate_SelfCycle(t *testing.T) {
	p := domain.NewPlan("demo")
	if err := p.AddTask(newTask("A", "A")); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	err := p.Validate()
	if err == nil {
		t.Fatal("expected error for self-dependency, got nil")
	}
}

func TestPlan_Walk_PreservesInputOrder(t *testing.T) {
	p := domain.NewPlan("demo")
	for _, id := range []string{"third", "first", "second"} {
		if err := p.AddTask(newTask(id)); err != nil {
			t.Fatalf("failed to add %s: %v", id, err)
		}
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	var got []string
	for task := range p.Walk() {
		got = append(got, task.ID.String())
	}

	want := []string{"third", "first", "second"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("independent tasks must keep input order: got %v, want %v", got, want)
		}
	}
}

func TestPlan_Walk_RelaxationOrder(t *testing.T) {
	// C depends on A but appears before it, so C cannot resolve in the
	// first pass. B appears after A and resolves in the same pass as A.
	p := domain.NewPlan("demo")
	if err := p.AddTask(newTask("C", "A")); err != nil {
		t.Fatalf("failed to add task C: %v", err)
	}
	if err := p.AddTask(newTask("A")); err != nil {
		t.Fatalf("failed to add task A: %v", err)
	}
	if err := p.AddTask(newTask("B", "A")); err != nil {
		t.Fatalf("failed to add task B: %v", err)
	}

	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	var got []string
	for task := range p.Walk() {
		got = append(got, task.ID.String())
	}

	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected processing order: got %v, want %v", got, want)
		}
	}
}

func TestPlan_Task(t *testing.T) {
	p := domain.NewPlan("demo")
	if err := p.AddTask(newTask("A")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task, ok := p.Task(domain.NewID("A")); !ok || task.Title != "A" {
		t.Errorf("expected to find task A, got ok=%v task=%v", ok, task)
	}
	if _, ok := p.Task(domain.NewID("missing")); ok {
		t.Error("expected lookup miss for unknown id")
	}
}
