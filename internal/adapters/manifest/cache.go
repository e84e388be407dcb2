package manifest

import (
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
)

var _ ports.ManifestLoader = (*Cache)(nil)

// Cache memoizes decoded manifests by path. One Cache serves one request;
// start a new one to observe manifests rewritten by a dev server.
//
// Only successful loads are remembered, so a manifest that appears halfway
// through a request is picked up by the next lookup.
type Cache struct {
	reader    *Reader
	manifests map[string]*domain.Manifest
}

// NewCache creates an empty Cache reading through r.
func NewCache(r *Reader) *Cache {
	return &Cache{
		reader:    r,
		manifests: make(map[string]*domain.Manifest),
	}
}

// Load returns the manifest at path, or false if it is missing, empty or malformed.
func (c *Cache) Load(path string) (*domain.Manifest, bool) {
	if path == "" {
		return nil, false
	}
	if m, ok := c.manifests[path]; ok {
		return m, true
	}

	m, err := c.reader.Read(path)
	if err != nil || m == nil {
		return nil, false
	}

	c.manifests[path] = m
	return m, true
}

// Active returns the first candidate path whose manifest loads.
func (c *Cache) Active(paths []string) (string, bool) {
	for _, p := range paths {
		if _, ok := c.Load(p); ok {
			return p, true
		}
	}
	return "", false
}

// Resource looks up a single asset name in the manifest at path.
func (c *Cache) Resource(path, name string) (string, bool) {
	m, ok := c.Load(path)
	if !ok {
		return "", false
	}
	return m.Get(name)
}

// Values returns every value of the manifest at path in manifest order.
func (c *Cache) Values(path string) []string {
	m, ok := c.Load(path)
	if !ok {
		return nil
	}
	return m.Values()
}
