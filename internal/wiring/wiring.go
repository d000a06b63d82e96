// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/yarnix/internal/adapters/config"
	_ "go.trai.ch/yarnix/internal/adapters/fetch"
	_ "go.trai.ch/yarnix/internal/adapters/logger"
	_ "go.trai.ch/yarnix/internal/adapters/prefetch"
	_ "go.trai.ch/yarnix/internal/adapters/telemetry"
	_ "go.trai.ch/yarnix/internal/adapters/yarnlock"
	// Register app and engine nodes.
	_ "go.trai.ch/yarnix/internal/app"
	_ "go.trai.ch/yarnix/internal/engine/reconciler"
)
