package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/rcstring/internal/adapters/logger"
	"go.trai.ch/rcstring/internal/core/ports"
)

const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(afero.NewOsFs(), log), nil
		},
	})
}
