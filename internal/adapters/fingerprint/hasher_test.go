package fingerprint_test

import (
	"testing"

	"weave/internal/adapters/fingerprint"
	"weave/internal/core/domain"
)

func TestFingerprint_Deterministic(t *testing.T) {
	h := fingerprint.NewHasher()
	s := &domain.Snippet{
		ID:     domain.NewInternedString("read-data"),
		Source: `d <- read.csv("mydata.csv")`,
	}

	a := h.Fingerprint(s)
	b := h.Fingerprint(s)
	if a != b {
		t.Errorf("fingerprint not deterministic: %s != %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %q", a)
	}
}

func TestFingerprint_SingleCharacterChange(t *testing.T) {
	h := fingerprint.NewHasher()
	a := h.Fingerprint(&domain.Snippet{Source: "plot(d)"})
	b := h.Fingerprint(&domain.Snippet{Source: "plot(e)"})
	if a == b {
		t.Error("expected different fingerprints for different source text")
	}
}

// Options and dependencies are deliberately outside the fingerprint: only a
// literal source change invalidates a cache entry.
func TestFingerprint_IgnoresOptionsAndDependencies(t *testing.T) {
	h := fingerprint.NewHasher()

	plain := &domain.Snippet{Source: "plot(d)"}
	decorated := &domain.Snippet{
		Source:    "plot(d)",
		Options:   domain.ChunkOptions{Eval: true, Echo: false, Cache: true, FigWidth: 10},
		DependsOn: []domain.InternedString{domain.NewInternedString("read-data")},
	}

	if h.Fingerprint(plain) != h.Fingerprint(decorated) {
		t.Error("fingerprint must depend on source text only")
	}
}
