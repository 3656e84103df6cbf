package parser

import (
	"context"

	"github.com/grindlemire/graft"
	"weave/internal/adapters/logger"
	"weave/internal/core/ports"
)

// NodeID is the unique identifier for the document loader Graft node.
const NodeID graft.ID = "adapter.document_loader"

func init() {
	graft.Register(graft.Node[ports.DocumentLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DocumentLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
