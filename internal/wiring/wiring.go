// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rcstring/internal/adapters/codec"
	_ "go.trai.ch/rcstring/internal/adapters/config"
	_ "go.trai.ch/rcstring/internal/adapters/fs"
	_ "go.trai.ch/rcstring/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/rcstring/internal/app"
	_ "go.trai.ch/rcstring/internal/engine/stress"
)
