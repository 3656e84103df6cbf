package markdown

import (
	"context"

	"github.com/grindlemire/graft"
	"weave/internal/core/ports"
)

// NodeID is the unique identifier for the artifact writer Graft node.
const NodeID graft.ID = "adapter.artifact_writer"

func init() {
	graft.Register(graft.Node[ports.ArtifactWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ArtifactWriter, error) {
			return NewWriter(), nil
		},
	})
}
