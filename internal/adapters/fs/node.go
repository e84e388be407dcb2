package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetloader/internal/core/ports"
)

const (
	// FileSystemNodeID is the unique identifier for the file system Graft node.
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
	// VersionerNodeID is the unique identifier for the versioner Graft node.
	VersionerNodeID graft.ID = "adapter.fs.versioner"
)

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewOSFS(), nil
		},
	})

	graft.Register(graft.Node[ports.Versioner]{
		ID:        VersionerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FileSystemNodeID},
		Run: func(ctx context.Context) (ports.Versioner, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewVersioner(fsys), nil
		},
	})
}
