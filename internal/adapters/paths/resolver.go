// Package paths maps file-system paths to the public URIs the host serves them from.
package paths

import (
	"path/filepath"
	"strings"

	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.URIResolver = (*Resolver)(nil)

// Resolver implements ports.URIResolver for a theme-and-content layout.
//
// Files in the active (child) theme or the parent theme are served from the
// matching theme URL. Anything else under the content directory, plugins and
// must-use plugins included, is served relative to the content URL.
type Resolver struct {
	roots []root
}

type root struct {
	dir string
	url string
}

// NewResolver creates a Resolver for the given layout. Empty entries are ignored.
func NewResolver(p domain.Paths) *Resolver {
	r := &Resolver{}
	// Order matters: a child theme lives inside the content directory and
	// must win over the generic content mapping.
	for _, candidate := range []root{
		{dir: p.StylesheetDir, url: p.StylesheetURL},
		{dir: p.TemplateDir, url: p.TemplateURL},
		{dir: p.ContentDir, url: p.ContentURL},
	} {
		if candidate.dir == "" || candidate.url == "" {
			continue
		}
		candidate.dir = filepath.Clean(candidate.dir)
		candidate.url = strings.TrimRight(candidate.url, "/")
		r.roots = append(r.roots, candidate)
	}
	return r
}

// FileURI returns the public URI for an absolute file path.
func (r *Resolver) FileURI(path string) (string, error) {
	clean := filepath.Clean(path)
	for _, rt := range r.roots {
		rel, ok := within(rt.dir, clean)
		if !ok {
			continue
		}
		if rel == "" {
			return rt.url, nil
		}
		return rt.url + "/" + rel, nil
	}
	return "", zerr.With(domain.ErrPathOutsideContent, "path", path)
}

// within returns path relative to dir, in slash form, if path is inside dir.
func within(dir, path string) (string, bool) {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	if rel == "." {
		return "", true
	}
	return filepath.ToSlash(rel), true
}
