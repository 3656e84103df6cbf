// Package ports defines the core interfaces for the application.
package ports

import "weave/internal/core/domain"

// DocumentLoader defines the interface for loading and parsing a literate
// document into its block sequence and snippet registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=document_loader.go -destination=mocks/mock_document_loader.go -package=mocks
type DocumentLoader interface {
	// Load reads and parses the document at the given path.
	Load(path string) (*domain.Document, error)
}
