package ports

import "weave/internal/core/domain"

// Fingerprinter defines the interface for computing snippet fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a deterministic digest of the snippet's literal
	// source text. Options, dependencies, and runtime values are excluded.
	Fingerprint(snippet *domain.Snippet) string
}
