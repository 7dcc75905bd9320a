package domain_test

import (
	"testing"

	"github.com/kylemshaw/ganttify/internal/core/domain"
)

func TestID_Interning(t *testing.T) {
	a := domain.NewID("build")
	b := domain.NewID("build")
	c := domain.NewID("deploy")

	if a != b {
		t.Error("identical ids must compare equal")
	}
	if a == c {
		t.Error("distinct ids must not compare equal")
	}
	if a.String() != "build" {
		t.Errorf("expected String to round-trip, got %q", a.String())
	}
}

func TestID_Zero(t *testing.T) {
	var id domain.ID
	if !id.IsZero() {
		t.Error("zero value must report IsZero")
	}
	if id.String() != "" {
		t.Errorf("zero id must stringify empty, got %q", id.String())
	}
	if domain.NewID("x").IsZero() {
		t.Error("non-empty id must not report IsZero")
	}
}

func TestNewIDs(t *testing.T) {
	ids := domain.NewIDs([]string{"a", "b"})
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	if ids[0] != domain.NewID("a") || ids[1] != domain.NewID("b") {
		t.Error("ids must intern to the same handles as NewID")
	}
	if domain.NewIDs(nil) != nil {
		t.Error("nil input must yield nil")
	}
}

func TestResource_Zero(t *testing.T) {
	var r domain.Resource
	if !r.IsZero() {
		t.Error("zero value must report IsZero")
	}
	if r.String() != "" {
		t.Errorf("zero resource must stringify empty, got %q", r.String())
	}
	if !domain.NewResource("").IsZero() {
		t.Error("empty string must yield the zero resource")
	}
	if domain.NewResource("alice").IsZero() {
		t.Error("named resource must not be zero")
	}
}

func TestResource_Interning(t *testing.T) {
	a := domain.NewResource("alice")
	b := domain.NewResource("alice")
	if a != b {
		t.Error("identical resources must compare equal")
	}
	if a.String() != "alice" {
		t.Errorf("expected String to round-trip, got %q", a.String())
	}
}

func TestID_TextRoundTrip(t *testing.T) {
	id := domain.NewID("build")
	text, err := id.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded domain.ID
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != id {
		t.Errorf("expected %v, got %v", id, decoded)
	}
}
