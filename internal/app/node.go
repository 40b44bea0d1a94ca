package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rcstring/internal/adapters/codec"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rcstring/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/rcstring/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rcstring/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/rcstring/internal/core/ports"
	"go.trai.ch/rcstring/internal/engine/stress"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ReaderNodeID,
			codec.NodeID,
			logger.NodeID,
			stress.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.InputReader](ctx)
	if err != nil {
		return nil, err
	}

	docCodec, err := graft.Dep[ports.DocumentCodec](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*stress.Runner](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reader, docCodec, log, runner), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
