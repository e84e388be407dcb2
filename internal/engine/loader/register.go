package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/assetloader/internal/core/domain"
)

// Register resolves req and registers the result with the host.
//
// A request without manifests is reported through the logger and registers
// nothing. Registration conflicts are logged and never fail the request.
func (s *Session) Register(ctx context.Context, req domain.Request) (domain.Handles, error) {
	ctx, span := s.tracer.Start(ctx, "loader.register")
	defer span.End()
	span.SetAttribute("asset", req.Asset)

	if len(req.Manifests) == 0 {
		s.logger.Warn(noManifestMessage(req.Asset))
		return domain.Handles{}, nil
	}

	res, err := s.Resolve(ctx, req)
	if err != nil {
		span.RecordError(err)
		return domain.Handles{}, err
	}

	handles := s.register(res, req.Options)
	span.SetAttribute("script", handles.Script)
	span.SetAttribute("style", handles.Style)
	return handles, nil
}

// Enqueue registers req and queues the resulting handles for output.
func (s *Session) Enqueue(ctx context.Context, req domain.Request) (domain.Handles, error) {
	handles, err := s.Register(ctx, req)
	if err != nil {
		return handles, err
	}
	if handles.Script != "" {
		s.registry.EnqueueScript(handles.Script)
	}
	if handles.Style != "" {
		s.registry.EnqueueStyle(handles.Style)
	}
	return handles, nil
}

func (s *Session) register(res domain.Resolved, opts domain.Options) domain.Handles {
	var handles domain.Handles

	// Code-split dev builds ship a shared runtime chunk that must load once per page.
	var runtimeHandle string
	if res.Kind == domain.KindScript {
		runtimeHandle = s.registerManifestRuntime(res.ManifestPath, res.ManifestDir)
	}

	switch {
	case res.Kind == domain.KindStyle:
		s.registry.RegisterStyle(domain.Style{
			Handle:  res.Handle,
			Src:     res.URI,
			Deps:    slices.Clone(opts.Dependencies),
			Version: res.Version,
		})
		handles.Style = res.Handle

	case res.StyleFallback:
		// Style dependencies mean nothing to the script registry. Keep them
		// loading through a style that has no file of its own.
		s.SetupSSLErrorHandling(res.URI)
		s.RegisterOrUpdateScript(domain.Script{
			Handle:   res.Handle,
			Src:      res.URI,
			Version:  res.Version,
			InFooter: true,
		})
		handles.Script = res.Handle
		if len(opts.Dependencies) > 0 {
			s.registry.RegisterStyle(domain.Style{
				Handle:  res.Handle,
				Deps:    slices.Clone(opts.Dependencies),
				Version: res.Version,
			})
			handles.Style = res.Handle
		}

	default:
		s.SetupSSLErrorHandling(res.URI)
		if domain.IncludesHMRDependency(opts.Dependencies) {
			s.WarnIfScriptDebugDisabled()
		}
		s.RegisterOrUpdateScript(domain.Script{
			Handle:   res.Handle,
			Src:      res.URI,
			Deps:     slices.Clone(opts.Dependencies),
			Version:  res.Version,
			InFooter: opts.LoadInFooter(),
		})
		handles.Script = res.Handle
	}

	if runtimeHandle != "" {
		s.appendDependency(res.Handle, runtimeHandle)
	}
	return handles
}

// RegisterOrUpdateScript registers script, or fills in the dependencies of an
// existing registration of the same handle that declared none.
//
// A script first registered through a .css fallback carries no dependencies;
// a later request for the .js entry may supply them. When both registrations
// declare dependencies the update is skipped and false is returned.
// Runtime chunk dependencies added by the loader do not count as declared.
func (s *Session) RegisterOrUpdateScript(script domain.Script) (string, bool) {
	if len(script.Deps) > 0 {
		if existing, ok := s.registry.Script(script.Handle); ok {
			own, runtime := domain.SplitRuntimeDeps(existing.Deps)
			if len(own) > 0 {
				s.logger.Warn(fmt.Sprintf("%s: %s", domain.ErrDependencyConflict.Error(), script.Handle))
				return "", false
			}

			deps := slices.Clone(script.Deps)
			for _, r := range runtime {
				if !slices.Contains(deps, r) {
					deps = append(deps, r)
				}
			}
			s.registry.SetScriptDeps(script.Handle, deps)
			return script.Handle, true
		}
	}

	s.registry.RegisterScript(script)
	return script.Handle, true
}

// registerManifestRuntime registers the manifest's runtime.js entry, if any,
// under a handle derived from its URI so bundles sharing it load it once.
func (s *Session) registerManifestRuntime(manifestPath, manifestDir string) string {
	m, ok := s.manifests.Load(manifestPath)
	if !ok {
		return ""
	}
	value, ok := m.Get(domain.RuntimeChunkName)
	if !ok {
		return ""
	}

	uri, err := s.publicURI(manifestDir, value)
	if err != nil {
		s.logger.Error(err)
		return ""
	}
	handle := RuntimeHandle(uri)
	if _, registered := s.registry.Script(handle); !registered {
		s.registry.RegisterScript(domain.Script{Handle: handle, Src: uri})
	}
	return handle
}

// RuntimeHandle returns the handle a runtime chunk served from uri registers under.
func RuntimeHandle(uri string) string {
	return domain.RuntimeHandlePrefix + domain.Digest(xxhash.Sum64String(uri))
}

func (s *Session) appendDependency(handle, dep string) {
	script, ok := s.registry.Script(handle)
	if !ok || script.HasDep(dep) {
		return
	}
	s.registry.SetScriptDeps(handle, append(script.Deps, dep))
}

// DetectRuntimeChunk looks for runtime.js next to a compiled script's metadata
// file and up to two directories above it. The chunk is registered unless a
// script with the same URI already is, and its handle returned. An empty
// string means no runtime chunk was found.
func (s *Session) DetectRuntimeChunk(assetFilePath string) string {
	uri := s.inferRuntimeURI(assetFilePath)
	if uri == "" {
		return ""
	}

	handle := domain.DefaultRuntimeHandle
	if existing, ok := s.registry.ScriptBySrc(uri); ok {
		handle = existing.Handle
	}
	if _, registered := s.registry.Script(handle); !registered {
		version, _ := s.versions.ModTimeVersion(assetFilePath)
		s.registry.RegisterScript(domain.Script{
			Handle:   handle,
			Src:      uri,
			Version:  version,
			InFooter: false,
		})
	}
	return handle
}

func (s *Session) inferRuntimeURI(assetFilePath string) string {
	dir := assetFilePath
	for range domain.RuntimeSearchDepth {
		dir = filepath.Dir(dir)
		candidate := filepath.Join(dir, domain.RuntimeChunkName)
		info, err := s.files.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		uri, err := s.uris.FileURI(candidate)
		if err != nil {
			s.logger.Error(err)
			return ""
		}
		return uri
	}
	return ""
}
