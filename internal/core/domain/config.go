package domain

import (
	"maps"
	"slices"
)

// Paths describes where the host serves theme and content files from.
// Directories are absolute file-system paths; URLs are their public counterparts.
type Paths struct {
	ContentDir    string
	ContentURL    string
	StylesheetDir string
	StylesheetURL string
	TemplateDir   string
	TemplateURL   string
}

// AssetEntry is a configured asset to register on every render.
type AssetEntry struct {
	// Manifest names an entry of Config.Manifests.
	Manifest string
	Asset    string
	Options  Options
	// Enqueue also adds the registered handles to the page queue.
	Enqueue bool
}

// Config is the loaded project configuration.
type Config struct {
	// Root is the directory that contains the config file.
	Root        string
	Environment Environment
	Paths       Paths
	// Manifests maps a name to an ordered list of candidate manifest paths.
	Manifests map[string][]string
	Assets    []AssetEntry
	// Blocks lists block.json paths to register.
	Blocks []string
	// BlockAssetKeys overrides which block.json keys are resolved through manifests.
	BlockAssetKeys []string
	// BlockManifestNames overrides the manifest file names searched next to block.json.
	BlockManifestNames []string
}

// ManifestPaths returns every configured manifest path once, sorted by manifest name
// and then in candidate order.
func (c *Config) ManifestPaths() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, name := range slices.Sorted(maps.Keys(c.Manifests)) {
		for _, p := range c.Manifests[name] {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
