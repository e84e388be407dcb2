// Package assetloader registers bundler-built scripts and styles with a
// CMS-style host, resolving logical asset names through JSON asset manifests.
//
// A Loader serves one page request. It owns an in-memory host that collects
// script and style registrations and renders them as HTML tags:
//
//	l := assetloader.New(assetloader.Config{
//		Paths: assetloader.Paths{
//			StylesheetDir: "/srv/site/themes/acme",
//			StylesheetURL: "https://example.com/themes/acme",
//		},
//	})
//	_, err := l.Enqueue(ctx, []string{"/srv/site/themes/acme/build/asset-manifest.json"}, "editor.js", assetloader.Options{})
//	page := l.Render()
package assetloader

import (
	"context"
	iofs "io/fs"

	"go.trai.ch/assetloader/internal/adapters/fs"
	"go.trai.ch/assetloader/internal/adapters/host"
	"go.trai.ch/assetloader/internal/adapters/logger"
	"go.trai.ch/assetloader/internal/adapters/manifest"
	"go.trai.ch/assetloader/internal/adapters/paths"
	"go.trai.ch/assetloader/internal/adapters/telemetry"
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/assetloader/internal/engine/blocks"
	"go.trai.ch/assetloader/internal/engine/loader"
)

type (
	// Options configures a single asset registration.
	Options = domain.Options
	// Resolved describes where an asset resolved to.
	Resolved = domain.Resolved
	// Handles are the script and style handles a registration produced.
	Handles = domain.Handles
	// Environment carries the host flags for one request.
	Environment = domain.Environment
	// EnvironmentType is local, development, staging or production.
	EnvironmentType = domain.EnvironmentType
	// Paths maps theme and content directories to public URLs.
	Paths = domain.Paths
	// Script is a registered script.
	Script = domain.Script
	// Style is a registered style.
	Style = domain.Style
	// BlockType is a block registered from block.json.
	BlockType = domain.BlockType
	// Page is the rendered head and footer markup.
	Page = host.Page
	// Logger receives warnings and errors raised while registering assets.
	Logger = ports.Logger
)

// Environment types.
const (
	EnvLocal       = domain.EnvLocal
	EnvDevelopment = domain.EnvDevelopment
	EnvStaging     = domain.EnvStaging
	EnvProduction  = domain.EnvProduction
)

// Footer returns a pointer to inFooter for Options.InFooter.
func Footer(inFooter bool) *bool {
	return domain.Footer(inFooter)
}

// Config configures a Loader.
type Config struct {
	Paths       Paths
	Environment Environment
	// Logger defaults to colored output on stderr.
	Logger Logger
	// FS serves manifests and metadata instead of the operating system.
	// Absolute paths are looked up relative to its root.
	FS iofs.FS
	// BlockAssetKeys overrides which block.json keys are resolved through manifests.
	BlockAssetKeys []string
	// BlockManifestNames overrides the manifest file names looked up next to block.json.
	BlockManifestNames []string
}

// Loader registers assets for one page request. It is not safe for concurrent use.
type Loader struct {
	host    *host.Host
	session *loader.Session
	blocks  *blocks.Registrar
}

// New creates a Loader for a single request.
func New(cfg Config) *Loader {
	log := cfg.Logger
	if log == nil {
		log = logger.New()
	}

	var files ports.FileSystem = fs.NewOSFS()
	if cfg.FS != nil {
		files = fs.NewFSAdapter("/", cfg.FS)
	}

	h := host.New()
	session := loader.NewSession(loader.Deps{
		Registry:  h,
		Hooks:     h,
		Manifests: manifest.NewCache(manifest.NewReader(files)),
		Files:     files,
		URIs:      paths.NewResolver(cfg.Paths),
		Versions:  fs.NewVersioner(files),
		Logger:    log,
		Tracer:    telemetry.NewNoOpTracer(),
	}, cfg.Environment)

	return &Loader{
		host:    h,
		session: session,
		blocks:  blocks.NewRegistrar(session, files, h, log, cfg.BlockAssetKeys, cfg.BlockManifestNames),
	}
}

// Resolve looks up asset in the first of manifests that loads without registering it.
func (l *Loader) Resolve(ctx context.Context, manifests []string, asset string, opts Options) (Resolved, error) {
	return l.session.Resolve(ctx, request(manifests, asset, opts))
}

// Register resolves asset and registers it as a script or style.
func (l *Loader) Register(ctx context.Context, manifests []string, asset string, opts Options) (Handles, error) {
	return l.session.Register(ctx, request(manifests, asset, opts))
}

// Enqueue registers asset and queues its handles for output.
func (l *Loader) Enqueue(ctx context.Context, manifests []string, asset string, opts Options) (Handles, error) {
	return l.session.Enqueue(ctx, request(manifests, asset, opts))
}

// RegisterBlock registers the block type described by the block.json at path,
// or inside path when it is a directory.
func (l *Loader) RegisterBlock(ctx context.Context, path string) (BlockType, error) {
	return l.blocks.RegisterBlock(ctx, path)
}

// AssetsList returns every value of the manifest at path, in manifest order.
func (l *Loader) AssetsList(path string) []string {
	return l.session.AssetsList(path)
}

// DetectRuntimeChunk registers the runtime.js found near the asset metadata
// file at path and returns its handle, or "" when there is none.
func (l *Loader) DetectRuntimeChunk(path string) string {
	return l.session.DetectRuntimeChunk(path)
}

// EnqueueScript queues an already registered script. It returns false for unknown handles.
func (l *Loader) EnqueueScript(handle string) bool {
	return l.host.EnqueueScript(handle)
}

// EnqueueStyle queues an already registered style. It returns false for unknown handles.
func (l *Loader) EnqueueStyle(handle string) bool {
	return l.host.EnqueueStyle(handle)
}

// Script returns the registered script with handle.
func (l *Loader) Script(handle string) (Script, bool) {
	return l.host.Script(handle)
}

// Render prints the queued styles and scripts.
func (l *Loader) Render() Page {
	return l.host.Render()
}

func request(manifests []string, asset string, opts Options) domain.Request {
	return domain.Request{Manifests: manifests, Asset: asset, Options: opts}
}
