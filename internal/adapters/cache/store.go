// Package cache implements the persistent snippet output store.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"
	"weave/internal/core/domain"
	"weave/internal/core/ports"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore using one flat JSON file per document
// namespace under the store root.
//
// A corrupt or unreadable namespace file is treated as an empty namespace
// (every lookup misses); it is rewritten on the next commit. Entries are
// never pruned automatically.
type Store struct {
	dir    string
	logger ports.Logger

	mu   sync.RWMutex
	docs map[string]map[string]domain.CacheEntry
}

// NewStore creates a CacheStore rooted at the given directory.
func NewStore(dir string, logger ports.Logger) *Store {
	return &Store{
		dir:    filepath.Clean(dir),
		logger: logger,
		docs:   make(map[string]map[string]domain.CacheEntry),
	}
}

// namespacePath returns the file backing a document namespace.
func (s *Store) namespacePath(doc string) string {
	return filepath.Join(s.dir, filepath.Base(doc)+".json")
}

// ensureLoaded reads the namespace file into memory once.
// Callers must hold the write lock.
func (s *Store) ensureLoaded(doc string) {
	if _, ok := s.docs[doc]; ok {
		return
	}
	entries := make(map[string]domain.CacheEntry)
	s.docs[doc] = entries

	//nolint:gosec // Path is rooted at the store directory
	data, err := os.ReadFile(s.namespacePath(doc))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("cache namespace unreadable, treating as empty: " + err.Error())
		}
		return
	}
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corruption is a miss, never fatal.
		s.logger.Warn("cache namespace corrupt, treating as empty: " + err.Error())
		s.docs[doc] = make(map[string]domain.CacheEntry)
	}
}

// save persists one namespace. Callers must hold the write lock.
func (s *Store) save(doc string) error {
	data, err := json.MarshalIndent(s.docs[doc], "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache namespace")
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	//nolint:gosec // Path is rooted at the store directory
	if err := os.WriteFile(s.namespacePath(doc), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write cache namespace")
	}

	return nil
}

// Lookup retrieves the cache entry for a snippet. Returns nil, nil on a miss.
func (s *Store) Lookup(doc, id string) (*domain.CacheEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(doc)
	entry, ok := s.docs[doc][id]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// ShouldRecompute reports whether the snippet must be executed: true if no
// entry exists or the stored fingerprint differs from the given one.
func (s *Store) ShouldRecompute(doc, id, fingerprint string) (bool, error) {
	entry, err := s.Lookup(doc, id)
	if err != nil {
		return true, err
	}
	return entry == nil || entry.Fingerprint != fingerprint, nil
}

// Commit overwrites any prior entry for the snippet and persists the namespace.
func (s *Store) Commit(doc string, entry domain.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(doc)
	s.docs[doc][entry.SnippetID] = entry
	return s.save(doc)
}

// Invalidate removes one snippet entry. Removing an absent entry is not an error.
func (s *Store) Invalidate(doc, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(doc)
	if _, ok := s.docs[doc][id]; !ok {
		return nil
	}
	delete(s.docs[doc], id)
	return s.save(doc)
}

// InvalidateAll removes every entry in the document namespace.
func (s *Store) InvalidateAll(doc string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[doc] = make(map[string]domain.CacheEntry)
	if err := os.Remove(s.namespacePath(doc)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to remove cache namespace")
	}
	return nil
}

// Purge removes every namespace under the store root.
func (s *Store) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = make(map[string]map[string]domain.CacheEntry)
	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.Wrap(err, "failed to remove cache directory")
	}
	return nil
}
