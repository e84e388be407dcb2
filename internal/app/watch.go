package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/assetloader/internal/adapters/host"
	"go.trai.ch/assetloader/internal/adapters/watcher"
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Watch renders the page once and again whenever a configured manifest or the
// configuration file itself changes. Each render is written to out through
// write. It returns when ctx is canceled.
func (a *App) Watch(
	ctx context.Context,
	cwd string,
	opts RequestOptions,
	out io.Writer,
	write func(io.Writer, host.Page) error,
) error {
	cfg, err := a.loadConfig(cwd, opts)
	if err != nil {
		return err
	}
	defer a.startTracing(ctx, opts)()

	files := cfg.ManifestPaths()
	if root, err := a.configLoader.DiscoverRoot(cwd); err == nil {
		files = append(files, filepath.Join(root, domain.ConfigFileName))
	}
	if err := write(out, a.render(ctx, cfg)); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}

	if err := a.watcher.Start(ctx, files); err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	a.logger.Info(fmt.Sprintf("watching %d files", len(files)))

	changes := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		select {
		case changes <- paths:
		case <-ctx.Done():
		}
	})
	digests := a.digests(files)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return a.watcher.Stop()
	})

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if a.changed(digests, event) {
				debouncer.Add(event.Path)
			}
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-changes:
				a.logger.Info("changed: " + strings.Join(paths, ", "))
				next, err := a.loadConfig(cwd, opts)
				if err != nil {
					a.logger.Error(err)
					next = cfg
				}
				if err := write(out, a.render(ctx, next)); err != nil {
					return zerr.Wrap(err, domain.ErrRenderFailed.Error())
				}
			}
		}
	})

	return g.Wait()
}

// digests returns the current content hash of every readable file.
func (a *App) digests(files []string) map[string]string {
	out := make(map[string]string, len(files))
	for _, f := range files {
		if v, err := a.versions.ContentVersion(f); err == nil {
			out[f] = v
		}
	}
	return out
}

// changed reports whether event altered the file's content. Editors and bundlers
// often rewrite manifests byte for byte, which should not trigger a render.
func (a *App) changed(digests map[string]string, event ports.WatchEvent) bool {
	if event.Operation == ports.OpRemove || event.Operation == ports.OpRename {
		delete(digests, event.Path)
		return true
	}
	v, err := a.versions.ContentVersion(event.Path)
	if err != nil {
		return true
	}
	if digests[event.Path] == v {
		return false
	}
	digests[event.Path] = v
	return true
}
