package ports

import (
	"context"

	"weave/internal/core/domain"
)

// Engine is the external collaborator that evaluates snippet source.
//
// Execution is an opaque, possibly side-effecting call: the engine receives
// the snippet and the outputs of its resolved dependencies (so state such as
// loaded data carries forward in document order) and returns rendered output
// or a failure with diagnostic text.
//
//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type Engine interface {
	// Execute evaluates one snippet. deps holds the results of the snippet's
	// declared dependencies, in declaration order.
	Execute(ctx context.Context, snippet *domain.Snippet, deps []domain.SnippetResult) (string, error)
}
