// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/assetloader/internal/adapters/config"
	_ "go.trai.ch/assetloader/internal/adapters/fs"
	_ "go.trai.ch/assetloader/internal/adapters/logger"
	_ "go.trai.ch/assetloader/internal/adapters/manifest"
	_ "go.trai.ch/assetloader/internal/adapters/telemetry"
	_ "go.trai.ch/assetloader/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/assetloader/internal/app"
)
