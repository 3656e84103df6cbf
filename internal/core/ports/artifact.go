package ports

import (
	"io"

	"weave/internal/core/domain"
)

// ArtifactWriter renders the compiled document: prose verbatim, snippet
// source where echoed, and snippet output per the results option.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact.go -destination=mocks/mock_artifact.go -package=mocks
type ArtifactWriter interface {
	// Write renders the document with the given snippet results to w.
	Write(w io.Writer, doc *domain.Document, results []domain.SnippetResult) error
}
