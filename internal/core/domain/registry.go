// Package domain contains the core domain models and business logic for the
// document snippet registry and its dependency ordering.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Registry holds the ordered sequence of snippets extracted from a document.
type Registry struct {
	snippets map[InternedString]Snippet
	order    []InternedString
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		snippets: make(map[InternedString]Snippet),
	}
}

// Add registers a snippet, preserving document order.
// It returns an error if a snippet with the same identifier already exists.
func (r *Registry) Add(s *Snippet) error {
	if _, exists := r.snippets[s.ID]; exists {
		return zerr.With(ErrDuplicateSnippet, "snippet_id", s.ID.String())
	}
	r.snippets[s.ID] = *s
	r.order = append(r.order, s.ID)
	return nil
}

// ByID returns the snippet with the given identifier.
func (r *Registry) ByID(id InternedString) (*Snippet, error) {
	s, ok := r.snippets[id]
	if !ok {
		return nil, zerr.With(ErrSnippetNotFound, "snippet_id", id.String())
	}
	return &s, nil
}

// Len returns the number of registered snippets.
func (r *Registry) Len() int {
	return len(r.order)
}

// All returns an iterator that yields snippets in document order.
func (r *Registry) All() iter.Seq[Snippet] {
	return func(yield func(Snippet) bool) {
		for _, id := range r.order {
			if !yield(r.snippets[id]) {
				return
			}
		}
	}
}

// Resolve computes an execution order consistent with the declared
// dependencies: every snippet appears after all snippets in its dependency
// set. The sort is stable with respect to document order, so snippets with no
// ordering constraint between them never reorder across runs.
//
// A dependency on an unknown identifier and a dependency cycle are both
// fatal; no partial ordering is produced.
func (r *Registry) Resolve() ([]Snippet, error) {
	indeg := make(map[InternedString]int, len(r.order))
	dependents := make(map[InternedString][]InternedString, len(r.order))

	for _, id := range r.order {
		s := r.snippets[id]
		for _, dep := range s.DependsOn {
			if _, ok := r.snippets[dep]; !ok {
				return nil, zerr.With(zerr.With(ErrMissingDependency, "snippet_id", id.String()), "dependency", dep.String())
			}
			indeg[id]++
			dependents[dep] = append(dependents[dep], id)
		}
	}

	ordered := make([]Snippet, 0, len(r.order))
	placed := make(map[InternedString]bool, len(r.order))

	// Kahn's algorithm, but instead of a queue we rescan the document order
	// and place the first ready snippet. Quadratic in the snippet count,
	// which is fine for documents, and it makes the tie-break rule exact:
	// among ready snippets, document order wins.
	for len(ordered) < len(r.order) {
		advanced := false
		for _, id := range r.order {
			if placed[id] || indeg[id] > 0 {
				continue
			}
			placed[id] = true
			ordered = append(ordered, r.snippets[id])
			for _, dep := range dependents[id] {
				indeg[dep]--
			}
			advanced = true
			break
		}
		if !advanced {
			return nil, r.cycleError(placed)
		}
	}

	return ordered, nil
}

// cycleError reports the identifiers that could not be placed because each
// still waits on another member of the set.
func (r *Registry) cycleError(placed map[InternedString]bool) error {
	members := ""
	for _, id := range r.order {
		if placed[id] {
			continue
		}
		if members != "" {
			members += " -> "
		}
		members += id.String()
	}
	return zerr.With(ErrCycleDetected, "cycle", members)
}
