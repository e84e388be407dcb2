// Package blocks registers block types from block.json metadata, loading
// their scripts and styles through the asset manifests next to them.
package blocks

import (
	"context"
	"encoding/json"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/assetloader/internal/engine/loader"
	"go.trai.ch/zerr"
)

// Registrar registers blocks within one request session.
type Registrar struct {
	session       *loader.Session
	files         ports.FileSystem
	blocks        ports.BlockRegistry
	logger        ports.Logger
	assetKeys     []string
	manifestNames []string
}

// NewRegistrar creates a Registrar. Empty assetKeys or manifestNames select the defaults.
func NewRegistrar(
	session *loader.Session,
	files ports.FileSystem,
	blocks ports.BlockRegistry,
	log ports.Logger,
	assetKeys []string,
	manifestNames []string,
) *Registrar {
	if len(assetKeys) == 0 {
		assetKeys = domain.DefaultBlockAssetKeys()
	}
	if len(manifestNames) == 0 {
		manifestNames = domain.DefaultBlockManifestNames()
	}
	return &Registrar{
		session:       session,
		files:         files,
		blocks:        blocks,
		logger:        log,
		assetKeys:     assetKeys,
		manifestNames: manifestNames,
	}
}

// RegisterBlock reads the block.json at metadataPath, or inside it when it is
// a directory, and registers the block type.
//
// Every configured asset key whose value is a "file:" path is resolved
// through the manifests in the block directory, registered under the handle
// the host would generate, and replaced by that handle in the metadata.
func (r *Registrar) RegisterBlock(ctx context.Context, metadataPath string) (domain.BlockType, error) {
	if info, err := r.files.Stat(metadataPath); err == nil && info.IsDir() {
		metadataPath = filepath.Join(metadataPath, domain.BlockMetadataFileName)
	}

	data, err := r.files.ReadFile(metadataPath)
	if err != nil {
		return domain.BlockType{}, zerr.With(zerr.Wrap(err, domain.ErrBlockMetadataReadFailed.Error()), "path", metadataPath)
	}

	var metadata map[string]any
	if err := json.Unmarshal(data, &metadata); err != nil {
		return domain.BlockType{}, zerr.With(zerr.Wrap(err, domain.ErrBlockMetadataParseFailed.Error()), "path", metadataPath)
	}

	name, _ := metadata["name"].(string)
	if name == "" {
		return domain.BlockType{}, zerr.With(domain.ErrBlockNameMissing, "path", metadataPath)
	}
	if _, exists := r.blocks.BlockType(name); exists {
		return domain.BlockType{}, zerr.With(domain.ErrBlockAlreadyRegistered, "block", name)
	}

	block := domain.BlockType{
		Name:     name,
		Dir:      filepath.Dir(metadataPath),
		Metadata: metadata,
		Handles:  make(map[string]string),
	}
	manifests := make([]string, 0, len(r.manifestNames))
	for _, m := range r.manifestNames {
		manifests = append(manifests, filepath.Join(block.Dir, m))
	}

	for _, key := range r.assetKeys {
		switch value := metadata[key].(type) {
		case string:
			handle, ok, err := r.registerAsset(ctx, &block, manifests, key, value, 0)
			if err != nil {
				return domain.BlockType{}, err
			}
			if ok {
				metadata[key] = handle
				block.Handles[key] = handle
			}
		case []any:
			for i, item := range value {
				s, isString := item.(string)
				if !isString {
					continue
				}
				handle, ok, err := r.registerAsset(ctx, &block, manifests, key, s, i)
				if err != nil {
					return domain.BlockType{}, err
				}
				if ok {
					value[i] = handle
					if _, seen := block.Handles[key]; !seen {
						block.Handles[key] = handle
					}
				}
			}
		}
	}

	if err := r.blocks.RegisterBlockType(block); err != nil {
		return domain.BlockType{}, err
	}
	return block, nil
}

func (r *Registrar) registerAsset(
	ctx context.Context,
	block *domain.BlockType,
	manifests []string,
	key, value string,
	index int,
) (string, bool, error) {
	rel, ok := strings.CutPrefix(value, domain.FilePathPrefix)
	if !ok {
		return "", false, nil
	}
	asset := path.Clean(filepath.ToSlash(rel))
	handle := domain.BlockAssetHandle(block.Name, key, index)

	opts := domain.Options{Handle: handle}
	if !domain.IsStyleKey(key) {
		metaPath := assetMetadataPath(block.Dir, asset)
		if meta, found := r.readAssetMetadata(metaPath); found {
			opts.Dependencies = slices.Clone(meta.Dependencies)
			opts.Version = meta.Version
		}
		if domain.IncludesHMRDependency(opts.Dependencies) {
			r.session.WarnIfScriptDebugDisabled()
			if runtime := r.session.DetectRuntimeChunk(metaPath); runtime != "" && !slices.Contains(opts.Dependencies, runtime) {
				opts.Dependencies = append(opts.Dependencies, runtime)
			}
		}
	}

	handles, err := r.session.Register(ctx, domain.Request{
		Manifests: manifests,
		Asset:     asset,
		Options:   opts,
	})
	if err != nil {
		return "", false, zerr.With(err, "block", block.Name)
	}
	if handles.Empty() {
		return "", false, nil
	}
	return handle, true, nil
}

// assetMetadataPath returns the path of the .asset.json emitted next to a compiled entry.
func assetMetadataPath(dir, asset string) string {
	base := strings.TrimSuffix(asset, path.Ext(asset))
	return filepath.Join(dir, filepath.FromSlash(base)+domain.AssetMetadataSuffix)
}

func (r *Registrar) readAssetMetadata(metaPath string) (domain.AssetMetadata, bool) {
	data, err := r.files.ReadFile(metaPath)
	if err != nil {
		return domain.AssetMetadata{}, false
	}
	var meta domain.AssetMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		r.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrBlockMetadataParseFailed.Error()), "path", metaPath))
		return domain.AssetMetadata{}, false
	}
	return meta, true
}
