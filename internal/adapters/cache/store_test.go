package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"weave/internal/adapters/cache"
	"weave/internal/core/domain"
)

type discardLogger struct {
	warned int
}

func (l *discardLogger) Info(string) {}
func (l *discardLogger) Warn(string) { l.warned++ }
func (l *discardLogger) Error(error) {}

func entry(id, fp, output string) domain.CacheEntry {
	return domain.CacheEntry{
		SnippetID:   id,
		Fingerprint: fp,
		Output:      output,
		Timestamp:   time.Now(),
	}
}

func TestStore_CommitAndLookup(t *testing.T) {
	s := cache.NewStore(t.TempDir(), &discardLogger{})

	if err := s.Commit("report", entry("read-data", "aaaa", "12 rows")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Lookup("report", "read-data")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected entry, got miss")
	}
	if got.Fingerprint != "aaaa" || got.Output != "12 rows" {
		t.Errorf("unexpected entry: %+v", got)
	}
}

func TestStore_LookupMiss(t *testing.T) {
	s := cache.NewStore(t.TempDir(), &discardLogger{})

	got, err := s.Lookup("report", "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss, got %+v", got)
	}
}

func TestStore_ShouldRecompute(t *testing.T) {
	s := cache.NewStore(t.TempDir(), &discardLogger{})

	recompute, err := s.ShouldRecompute("report", "read-data", "aaaa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !recompute {
		t.Error("expected recompute for missing entry")
	}

	if err := s.Commit("report", entry("read-data", "aaaa", "out")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recompute, err = s.ShouldRecompute("report", "read-data", "aaaa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recompute {
		t.Error("expected cache hit for matching fingerprint")
	}

	recompute, err = s.ShouldRecompute("report", "read-data", "bbbb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !recompute {
		t.Error("expected recompute for differing fingerprint")
	}
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	s := cache.NewStore(dir, &discardLogger{})
	if err := s.Commit("report", entry("make-plot", "cccc", "figure.png")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reopened := cache.NewStore(dir, &discardLogger{})
	got, err := reopened.Lookup("report", "make-plot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Output != "figure.png" {
		t.Fatalf("expected persisted entry, got %+v", got)
	}
}

func TestStore_NamespacesAreIndependent(t *testing.T) {
	s := cache.NewStore(t.TempDir(), &discardLogger{})

	if err := s.Commit("report", entry("setup", "aaaa", "a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Commit("slides", entry("setup", "bbbb", "b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Lookup("report", "setup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Fingerprint != "aaaa" {
		t.Fatalf("namespace bleed: %+v", got)
	}
}

func TestStore_CorruptNamespaceIsAMiss(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "report.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	log := &discardLogger{}
	s := cache.NewStore(dir, log)

	got, err := s.Lookup("report", "read-data")
	if err != nil {
		t.Fatalf("corruption must not be fatal, got %v", err)
	}
	if got != nil {
		t.Errorf("expected miss on corrupt namespace, got %+v", got)
	}
	if log.warned == 0 {
		t.Error("expected a warning for the corrupt namespace")
	}
}

func TestStore_Invalidate(t *testing.T) {
	s := cache.NewStore(t.TempDir(), &discardLogger{})

	if err := s.Commit("report", entry("a", "aa", "1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Commit("report", entry("b", "bb", "2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Invalidate("report", "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := s.Lookup("report", "a")
	if got != nil {
		t.Errorf("expected a to be gone, got %+v", got)
	}
	got, _ = s.Lookup("report", "b")
	if got == nil {
		t.Error("expected b to survive")
	}

	// Absent entries are not an error.
	if err := s.Invalidate("report", "ghost"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStore_InvalidateAllAndPurge(t *testing.T) {
	dir := t.TempDir()
	s := cache.NewStore(dir, &discardLogger{})

	if err := s.Commit("report", entry("a", "aa", "1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Commit("slides", entry("a", "aa", "1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.InvalidateAll("report"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := s.Lookup("report", "a")
	if got != nil {
		t.Errorf("expected empty namespace, got %+v", got)
	}
	got, _ = s.Lookup("slides", "a")
	if got == nil {
		t.Error("expected slides namespace to survive InvalidateAll(report)")
	}

	if err := s.Purge(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("expected cache directory to be removed")
	}
}

// Overwrites replace the stored fingerprint and output in place.
func TestStore_CommitOverwrites(t *testing.T) {
	s := cache.NewStore(t.TempDir(), &discardLogger{})

	if err := s.Commit("report", entry("plot", "v1", "old")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Commit("report", entry("plot", "v2", "new")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Lookup("report", "plot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fingerprint != "v2" || got.Output != "new" {
		t.Errorf("expected overwrite, got %+v", got)
	}
}
