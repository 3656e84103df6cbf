package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/zerr"
	"weave/internal/core/domain"
)

func snippet(id string, deps ...string) *domain.Snippet {
	ds := make([]domain.InternedString, len(deps))
	for i, d := range deps {
		ds[i] = domain.NewInternedString(d)
	}
	return &domain.Snippet{
		ID:        domain.NewInternedString(id),
		Source:    "echo " + id,
		Options:   domain.DefaultChunkOptions(),
		DependsOn: ds,
	}
}

func TestRegistry_Add_Duplicate(t *testing.T) {
	r := domain.NewRegistry()

	if err := r.Add(snippet("read-data")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.Add(snippet("read-data"))
	if err == nil {
		t.Fatal("expected error when adding duplicate snippet, got nil")
	}
	if !errors.Is(err, domain.ErrDuplicateSnippet) {
		t.Errorf("expected ErrDuplicateSnippet, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if id, ok := meta["snippet_id"].(string); !ok || id != "read-data" {
		t.Errorf("expected metadata snippet_id=read-data, got %v", meta["snippet_id"])
	}
}

func TestRegistry_ByID(t *testing.T) {
	r := domain.NewRegistry()
	if err := r.Add(snippet("setup")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err := r.ByID(domain.NewInternedString("setup"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID.String() != "setup" {
		t.Errorf("expected snippet setup, got %s", s.ID.String())
	}

	if _, err := r.ByID(domain.NewInternedString("nope")); !errors.Is(err, domain.ErrSnippetNotFound) {
		t.Errorf("expected ErrSnippetNotFound, got %v", err)
	}
}

func TestRegistry_All_DocumentOrder(t *testing.T) {
	r := domain.NewRegistry()
	for _, id := range []string{"c", "a", "b"} {
		if err := r.Add(snippet(id)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var got []string
	for s := range r.All() {
		got = append(got, s.ID.String())
	}

	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRegistry_Resolve_Topological(t *testing.T) {
	r := domain.NewRegistry()
	if err := r.Add(snippet("read-data")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Add(snippet("make-plot", "read-data")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Add(snippet("make-model", "read-data")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ordered, err := r.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"read-data", "make-plot", "make-model"}
	if len(ordered) != len(want) {
		t.Fatalf("expected %d snippets, got %d", len(want), len(ordered))
	}
	for i := range want {
		if ordered[i].ID.String() != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], ordered[i].ID.String())
		}
	}
}

func TestRegistry_Resolve_DependencyDeclaredLater(t *testing.T) {
	r := domain.NewRegistry()
	if err := r.Add(snippet("plot", "data")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Add(snippet("data")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ordered, err := r.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ordered[0].ID.String() != "data" || ordered[1].ID.String() != "plot" {
		t.Errorf("expected [data plot], got [%s %s]", ordered[0].ID.String(), ordered[1].ID.String())
	}
}

func TestRegistry_Resolve_StableWithoutEdges(t *testing.T) {
	r := domain.NewRegistry()
	ids := []string{"zeta", "alpha", "mu", "beta"}
	for _, id := range ids {
		if err := r.Add(snippet(id)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	ordered, err := r.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, id := range ids {
		if ordered[i].ID.String() != id {
			t.Fatalf("resolve reordered unrelated snippets: expected %v at %d, got %s", id, i, ordered[i].ID.String())
		}
	}
}

func TestRegistry_Resolve_Cycle(t *testing.T) {
	r := domain.NewRegistry()
	if err := r.Add(snippet("a", "b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Add(snippet("b", "a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := r.Resolve()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	cycle, ok := meta["cycle"].(string)
	if !ok || cycle == "" {
		t.Fatalf("expected non-empty cycle metadata, got %v", meta["cycle"])
	}
}

func TestRegistry_Resolve_MissingDependency(t *testing.T) {
	r := domain.NewRegistry()
	if err := r.Add(snippet("plot", "ghost")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := r.Resolve()
	if !errors.Is(err, domain.ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}
}
