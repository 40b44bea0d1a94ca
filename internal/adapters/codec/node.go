package codec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rcstring/internal/core/ports"
)

const NodeID graft.ID = "adapter.codec"

func init() {
	graft.Register(graft.Node[ports.DocumentCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentCodec, error) {
			return New(), nil
		},
	})
}
