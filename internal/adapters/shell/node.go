package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"weave/internal/adapters/config"
	"weave/internal/adapters/logger"
	"weave/internal/core/domain"
	"weave/internal/core/ports"
)

// NodeID is the unique identifier for the shell engine Graft node.
const NodeID graft.ID = "adapter.engine"

func init() {
	graft.Register(graft.Node[ports.Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Engine, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(cfg.Engine, log), nil
		},
	})
}
