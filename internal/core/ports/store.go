package ports

import "weave/internal/core/domain"

// CacheStore defines the interface for persisting snippet outputs keyed by
// fingerprint, within a per-document namespace.
//
// Validity is decided from the stored fingerprint alone. The fingerprint
// covers the snippet's literal source text and nothing else, so
// nondeterministic snippets silently reuse stale output once cached; that is
// correct behavior by this cache's contract.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Lookup retrieves the cache entry for a snippet.
	// Returns nil, nil on a miss.
	Lookup(doc, id string) (*domain.CacheEntry, error)

	// ShouldRecompute reports whether the snippet must be executed: true if
	// no entry exists or the stored fingerprint differs.
	ShouldRecompute(doc, id, fingerprint string) (bool, error)

	// Commit overwrites any prior entry for the snippet and persists the
	// namespace.
	Commit(doc string, entry domain.CacheEntry) error

	// Invalidate removes one snippet entry. Removing an absent entry is not
	// an error.
	Invalidate(doc, id string) error

	// InvalidateAll removes every entry in the document namespace.
	InvalidateAll(doc string) error

	// Purge removes every namespace under the store root.
	Purge() error
}
