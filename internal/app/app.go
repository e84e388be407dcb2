// Package app implements the application layer for assetloader.
package app

import (
	"context"
	"path/filepath"
	"time"

	"go.trai.ch/assetloader/internal/adapters/detector"
	"go.trai.ch/assetloader/internal/adapters/manifest"
	"go.trai.ch/assetloader/internal/adapters/telemetry"
	"go.trai.ch/assetloader/internal/adapters/watcher"
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	reader         *manifest.Reader
	files          ports.FileSystem
	versions       ports.Versioner
	logger         ports.Logger
	tracer         ports.Tracer
	watcher        ports.Watcher
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader *manifest.Reader,
	files ports.FileSystem,
	versions ports.Versioner,
	log ports.Logger,
	tracer ports.Tracer,
	w ports.Watcher,
) *App {
	return &App{
		configLoader:   loader,
		reader:         reader,
		files:          files,
		versions:       versions,
		logger:         log,
		tracer:         tracer,
		watcher:        w,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithDebounceWindow changes how long Watch waits for manifest writes to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// RequestOptions overrides the configured environment for one run.
type RequestOptions struct {
	// Admin renders an admin screen regardless of the config.
	Admin bool
	// Environment replaces the configured environment type when set.
	Environment string
	// ScriptDebug replaces the configured script_debug flag when set.
	ScriptDebug *bool
	// Trace logs a line for every finished span.
	Trace bool
}

// SetLogFormat switches the logger between pretty and JSON output.
// flag is "auto", "pretty" or "json"; auto inspects the terminal.
func (a *App) SetLogFormat(flag string) {
	switchable, ok := a.logger.(interface{ SetJSON(bool) })
	if !ok {
		return
	}
	mode := detector.ResolveMode(detector.DetectEnvironment(), flag)
	switchable.SetJSON(mode == detector.ModeJSON)
}

// loadConfig loads the project configuration and applies the run overrides.
func (a *App) loadConfig(cwd string, opts RequestOptions) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Admin {
		cfg.Environment.Admin = true
	}
	if opts.Environment != "" {
		env, err := domain.ParseEnvironmentType(opts.Environment)
		if err != nil {
			return nil, err
		}
		cfg.Environment.Type = env
	}
	if opts.ScriptDebug != nil {
		cfg.Environment.ScriptDebug = *opts.ScriptDebug
	}
	return cfg, nil
}

// startTracing installs the span-to-log bridge when requested.
// The returned function flushes and removes it.
func (a *App) startTracing(ctx context.Context, opts RequestOptions) func() {
	if !opts.Trace {
		return func() {}
	}
	shutdown := telemetry.Setup(telemetry.NewBridge(a.logger))
	return func() {
		if err := shutdown(ctx); err != nil {
			a.logger.Error(err)
		}
	}
}

func absPaths(cwd string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(cwd, p)
		}
		out = append(out, filepath.Clean(p))
	}
	return out
}
