package domain

import (
	"net/url"
	"regexp"
	"strings"
)

// Manifest maps logical asset names to URIs or paths relative to the manifest file.
// Entry order is preserved from the source document.
type Manifest struct {
	keys   []string
	values map[string]string
}

// NewManifest builds a manifest from key/value pairs, keeping their order.
// Later duplicates overwrite the value but keep the first position.
func NewManifest(pairs ...[2]string) *Manifest {
	m := &Manifest{values: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		m.Set(p[0], p[1])
	}
	return m
}

// Set adds or replaces an entry.
func (m *Manifest) Set(name, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = value
}

// Get looks up an asset. Empty values count as absent.
func (m *Manifest) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Values returns the mapped values in manifest order.
func (m *Manifest) Values() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// IsAbsoluteURI reports whether a manifest value already is a full or protocol-relative URI.
func IsAbsoluteURI(value string) bool {
	return strings.Contains(value, "//")
}

// IsDevServerURI reports whether uri is served from the developer's own machine,
// where files change on every rebuild and no cache-busting version applies.
func IsDevServerURI(uri string) bool {
	if strings.HasPrefix(uri, "//") {
		uri = "http:" + uri
	}
	u, err := url.Parse(uri)
	if err != nil {
		return false
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}

var localhostHTTPS = regexp.MustCompile(`https://localhost:\d+`)

// IsLocalhostHTTPS reports whether a URI is served by an HTTPS dev server on localhost.
func IsLocalhostHTTPS(uri string) bool {
	return localhostHTTPS.MatchString(uri)
}

// LocalhostHTTPSOrigins returns the distinct https://localhost:PORT origins found in values.
func LocalhostHTTPSOrigins(values []string) []string {
	seen := make(map[string]struct{})
	var origins []string
	for _, v := range values {
		for _, match := range localhostHTTPS.FindAllString(v, -1) {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			origins = append(origins, match)
		}
	}
	return origins
}
