package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetloader/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/assetloader/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/assetloader/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/assetloader/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/assetloader/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/assetloader/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/assetloader/internal/core/ports"
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
			manifest.NodeID,
			fs.FileSystemNodeID,
			fs.VersionerNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
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
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	reader, err := graft.Dep[*manifest.Reader](ctx)
	if err != nil {
		return nil, err
	}
	files, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}
	versions, err := graft.Dep[ports.Versioner](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, reader, files, versions, log, tracer, w), nil
}
