package stress

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rcstring/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rcstring/internal/core/ports"
)

// NodeID is the unique identifier for the stress runner Graft node.
const NodeID graft.ID = "engine.stress"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
