package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetloader/internal/adapters/fs"
	"go.trai.ch/assetloader/internal/core/ports"
)

// NodeID is the unique identifier for the manifest reader Graft node.
const NodeID graft.ID = "adapter.manifest_reader"

func init() {
	graft.Register(graft.Node[*Reader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID},
		Run: func(ctx context.Context) (*Reader, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(fsys), nil
		},
	})
}
