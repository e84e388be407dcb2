// Package loader resolves assets against bundler manifests and registers them
// with the host's script and style registries.
package loader

import (
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
)

// Deps holds the collaborators of a Session.
type Deps struct {
	Registry  ports.Registry
	Hooks     ports.Hooks
	Manifests ports.ManifestLoader
	Files     ports.FileSystem
	URIs      ports.URIResolver
	Versions  ports.Versioner
	Logger    ports.Logger
	Tracer    ports.Tracer
}

// Session registers assets for a single request.
//
// Everything memoized while serving the request lives on the Session: the
// manifest cache handed in through Deps, computed versions, and the flags
// that keep page notices from being added twice. Sessions are not safe for
// concurrent use.
type Session struct {
	registry  ports.Registry
	hooks     ports.Hooks
	manifests ports.ManifestLoader
	files     ports.FileSystem
	uris      ports.URIResolver
	versions  ports.Versioner
	logger    ports.Logger
	tracer    ports.Tracer
	env       domain.Environment

	manifestVersions map[string]string
	sslHandled       bool
	debugWarned      bool
}

// NewSession creates a Session for a request running in env.
func NewSession(deps Deps, env domain.Environment) *Session {
	return &Session{
		registry:         deps.Registry,
		hooks:            deps.Hooks,
		manifests:        deps.Manifests,
		files:            deps.Files,
		uris:             deps.URIs,
		versions:         deps.Versions,
		logger:           deps.Logger,
		tracer:           deps.Tracer,
		env:              env,
		manifestVersions: make(map[string]string),
	}
}

// Environment returns the environment the session was created for.
func (s *Session) Environment() domain.Environment {
	return s.env
}
