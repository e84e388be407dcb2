package app

import (
	"context"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/assetloader/internal/adapters/host"
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/zerr"
)

// Render registers every configured asset and block, then renders the page markup.
//
// Failures of single assets or blocks are logged and do not stop the render.
func (a *App) Render(ctx context.Context, cwd string, opts RequestOptions) (host.Page, error) {
	cfg, err := a.loadConfig(cwd, opts)
	if err != nil {
		return host.Page{}, err
	}
	defer a.startTracing(ctx, opts)()

	return a.render(ctx, cfg), nil
}

func (a *App) render(ctx context.Context, cfg *domain.Config) host.Page {
	ctx, span := a.tracer.Start(ctx, "app.render")
	defer span.End()

	req := a.newRequest(cfg)

	for _, entry := range cfg.Assets {
		r := domain.Request{
			Manifests: cfg.Manifests[entry.Manifest],
			Asset:     entry.Asset,
			Options:   entry.Options,
		}
		register := req.session.Register
		if entry.Enqueue {
			register = req.session.Enqueue
		}
		if _, err := register(ctx, r); err != nil {
			span.RecordError(err)
			a.logger.Error(zerr.With(err, "asset", entry.Asset))
		}
	}

	for _, path := range cfg.Blocks {
		bt, err := req.blocks.RegisterBlock(ctx, path)
		if err != nil {
			span.RecordError(err)
			a.logger.Error(err)
			continue
		}
		enqueueBlockAssets(req.host, bt, cfg.Environment.Admin)
	}

	page := req.host.Render()
	span.SetAttribute("scripts", len(req.host.Scripts()))
	span.SetAttribute("styles", len(req.host.Styles()))
	if len(page.Skipped) > 0 {
		a.logger.Warn("skipped handles with missing dependencies: " + strings.Join(page.Skipped, ", "))
	}
	return page
}

// enqueueBlockAssets queues the handles a block needs on the current screen:
// editor assets on admin screens, view assets on the front end, and the
// shared script and style on both.
func enqueueBlockAssets(h *host.Host, bt domain.BlockType, admin bool) {
	for _, key := range slices.Sorted(maps.Keys(bt.Handles)) {
		editorOnly := strings.HasPrefix(key, "editor")
		frontOnly := strings.HasPrefix(key, "view")
		if (editorOnly && !admin) || (frontOnly && admin) {
			continue
		}
		for _, handle := range blockHandles(bt, key) {
			if domain.IsStyleKey(key) {
				h.EnqueueStyle(handle)
				continue
			}
			h.EnqueueScript(handle)
		}
	}
}

// blockHandles returns the handles stored under key, which holds a single
// handle or a list mixing handles and other values.
func blockHandles(bt domain.BlockType, key string) []string {
	switch v := bt.Metadata[key].(type) {
	case string:
		return []string{v}
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok && !strings.HasPrefix(s, domain.FilePathPrefix) {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{bt.Handles[key]}
	}
}
