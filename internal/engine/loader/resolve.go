package loader

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/zerr"
)

// hashedName matches file names that already carry a bundler content hash,
// e.g. frontend-styles.96a500e3dd1eb671f25e.css.
var hashedName = regexp.MustCompile(`[.-][0-9a-f]{8,}[.-]`)

// Resolve finds the public URI for req.Asset without registering anything.
//
// The first candidate manifest that loads is consulted. A .css name missing
// from the manifest falls back to its .js dev-server wrapper. Names missing
// altogether are used as paths relative to the manifest directory.
func (s *Session) Resolve(ctx context.Context, req domain.Request) (domain.Resolved, error) {
	_, span := s.tracer.Start(ctx, "loader.resolve")
	defer span.End()
	span.SetAttribute("asset", req.Asset)

	if req.Asset == "" {
		span.RecordError(domain.ErrEmptyAssetName)
		return domain.Resolved{}, domain.ErrEmptyAssetName
	}
	if len(req.Manifests) == 0 {
		err := zerr.With(domain.ErrNoManifestSpecified, "asset", req.Asset)
		span.RecordError(err)
		return domain.Resolved{}, err
	}

	manifestPath, ok := s.manifests.Active(req.Manifests)
	if !ok {
		manifestPath = req.Manifests[0]
	}
	manifest, _ := s.manifests.Load(manifestPath)

	res := domain.Resolved{
		Handle:       req.HandleName(),
		ManifestPath: manifestPath,
		ManifestDir:  filepath.Dir(manifestPath),
	}

	value, found := manifest.Get(req.Asset)
	if !found && domain.IsCSS(req.Asset) {
		value, found = manifest.Get(domain.ScriptCounterpart(req.Asset))
		res.StyleFallback = found
	}
	res.FromManifest = found
	if !found {
		value = req.Asset
	}

	uri, err := s.publicURI(res.ManifestDir, value)
	if err != nil {
		err = zerr.With(err, "asset", req.Asset)
		span.RecordError(err)
		return domain.Resolved{}, err
	}
	res.URI = uri
	if domain.IsCSS(res.URI) {
		res.Kind = domain.KindStyle
	}
	switch {
	case req.Options.Version != "":
		res.Version = req.Options.Version
	case domain.IsDevServerURI(res.URI), hasContentHash(res.URI):
		// Rebuilt on every change or already cache-busted.
	default:
		res.Version = s.manifestVersion(manifestPath)
	}

	span.SetAttribute("uri", res.URI)
	span.SetAttribute("manifest", manifestPath)
	return res, nil
}

// publicURI maps a manifest value to a URI. Absolute and protocol-relative
// values are returned as they are; anything else is a path below dir and
// fails when dir is outside the mapped directories.
func (s *Session) publicURI(dir, value string) (string, error) {
	if domain.IsAbsoluteURI(value) {
		return value, nil
	}
	return s.uris.FileURI(filepath.Join(dir, value))
}

// manifestVersion hashes the manifest so every build busts caches at once.
// The modification time is used when the content cannot be hashed.
func (s *Session) manifestVersion(manifestPath string) string {
	if v, ok := s.manifestVersions[manifestPath]; ok {
		return v
	}

	v, err := s.versions.ContentVersion(manifestPath)
	if err != nil {
		v, err = s.versions.ModTimeVersion(manifestPath)
		if err != nil {
			v = ""
		}
	}
	s.manifestVersions[manifestPath] = v
	return v
}

func hasContentHash(uri string) bool {
	name, _, _ := strings.Cut(uri, "?")
	return hashedName.MatchString(path.Base(name))
}

// AssetsList returns every value of the manifest at manifestPath in manifest
// order, setting up dev-server certificate warnings when any of them is served
// from an HTTPS localhost origin.
func (s *Session) AssetsList(manifestPath string) []string {
	m, ok := s.manifests.Load(manifestPath)
	if !ok || m.Len() == 0 {
		return nil
	}
	values := m.Values()
	s.SetupSSLErrorHandling(values...)
	return values
}

func noManifestMessage(asset string) string {
	return fmt.Sprintf("No manifest specified when loading %s", asset)
}
