package fs

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/rcstring/internal/core/ports"
)

const ReaderNodeID graft.ID = "adapter.fs.reader"

func init() {
	graft.Register(graft.Node[ports.InputReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InputReader, error) {
			return NewReader(afero.NewOsFs(), os.Stdin), nil
		},
	})
}
