package app

import (
	"context"

	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveOptions configures a Resolve run.
type ResolveOptions struct {
	RequestOptions
	// Manifests are candidate manifest paths, relative to the working directory.
	Manifests []string
	// ManifestName selects a manifest list from the config instead.
	ManifestName string
	// Handle overrides the handle of every resolved asset.
	Handle string
}

// Report describes how one asset was resolved.
type Report struct {
	Asset         string `json:"asset"`
	Handle        string `json:"handle"`
	Kind          string `json:"kind"`
	URI           string `json:"uri"`
	Version       string `json:"version,omitempty"`
	Manifest      string `json:"manifest"`
	FromManifest  bool   `json:"from_manifest"`
	StyleFallback bool   `json:"style_fallback,omitempty"`
}

// Resolve looks up every asset without registering it.
func (a *App) Resolve(ctx context.Context, cwd string, assets []string, opts ResolveOptions) ([]Report, error) {
	cfg, err := a.loadConfig(cwd, opts.RequestOptions)
	if err != nil {
		return nil, err
	}
	defer a.startTracing(ctx, opts.RequestOptions)()

	manifests, err := selectManifests(cfg, cwd, opts)
	if err != nil {
		return nil, err
	}

	req := a.newRequest(cfg)
	reports := make([]Report, 0, len(assets))
	for _, asset := range assets {
		res, err := req.session.Resolve(ctx, domain.Request{
			Manifests: manifests,
			Asset:     asset,
			Options:   domain.Options{Handle: opts.Handle},
		})
		if err != nil {
			return nil, err
		}
		reports = append(reports, Report{
			Asset:         asset,
			Handle:        res.Handle,
			Kind:          res.Kind.String(),
			URI:           res.URI,
			Version:       res.Version,
			Manifest:      res.ManifestPath,
			FromManifest:  res.FromManifest,
			StyleFallback: res.StyleFallback,
		})
	}
	return reports, nil
}

// Assets lists the values of the first manifest in opts that loads.
func (a *App) Assets(ctx context.Context, cwd string, opts ResolveOptions) ([]string, error) {
	cfg, err := a.loadConfig(cwd, opts.RequestOptions)
	if err != nil {
		return nil, err
	}
	defer a.startTracing(ctx, opts.RequestOptions)()

	manifests, err := selectManifests(cfg, cwd, opts)
	if err != nil {
		return nil, err
	}
	if len(manifests) == 0 {
		return nil, domain.ErrNoManifestSpecified
	}

	req := a.newRequest(cfg)
	for _, m := range manifests {
		if values := req.session.AssetsList(m); len(values) > 0 {
			return values, nil
		}
	}
	return nil, nil
}

// selectManifests picks explicit paths first, then a named config entry, then
// the only configured manifest list if there is exactly one.
func selectManifests(cfg *domain.Config, cwd string, opts ResolveOptions) ([]string, error) {
	switch {
	case len(opts.Manifests) > 0:
		return absPaths(cwd, opts.Manifests), nil
	case opts.ManifestName != "":
		m, ok := cfg.Manifests[opts.ManifestName]
		if !ok {
			return nil, zerr.With(domain.ErrUnknownManifest, "manifest", opts.ManifestName)
		}
		return m, nil
	case len(cfg.Manifests) == 1:
		for _, m := range cfg.Manifests {
			return m, nil
		}
	}
	return nil, nil
}
