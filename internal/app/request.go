package app

import (
	"go.trai.ch/assetloader/internal/adapters/host"
	"go.trai.ch/assetloader/internal/adapters/manifest"
	"go.trai.ch/assetloader/internal/adapters/paths"
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/engine/blocks"
	"go.trai.ch/assetloader/internal/engine/loader"
)

// request holds everything scoped to one page render. Nothing in it outlives the render:
// manifests are re-read and once-only notices are shown again on the next request.
type request struct {
	host    *host.Host
	session *loader.Session
	blocks  *blocks.Registrar
}

func (a *App) newRequest(cfg *domain.Config) *request {
	h := host.New()
	session := loader.NewSession(loader.Deps{
		Registry:  h,
		Hooks:     h,
		Manifests: manifest.NewCache(a.reader),
		Files:     a.files,
		URIs:      paths.NewResolver(cfg.Paths),
		Versions:  a.versions,
		Logger:    a.logger,
		Tracer:    a.tracer,
	}, cfg.Environment)

	return &request{
		host:    h,
		session: session,
		blocks:  blocks.NewRegistrar(session, a.files, h, a.logger, cfg.BlockAssetKeys, cfg.BlockManifestNames),
	}
}
