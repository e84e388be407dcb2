package config

// File represents the structure of the assetloader.yaml configuration file.
type File struct {
	Version            string              `yaml:"version"`
	Root               string              `yaml:"root"`
	Environment        string              `yaml:"environment"`
	ScriptDebug        bool                `yaml:"script_debug"`
	Admin              bool                `yaml:"admin"`
	Paths              PathsDTO            `yaml:"paths"`
	Manifests          map[string][]string `yaml:"manifests"`
	Assets             []AssetDTO          `yaml:"assets"`
	Blocks             []string            `yaml:"blocks"`
	BlockAssetKeys     []string            `yaml:"block_asset_keys"`
	BlockManifestNames []string            `yaml:"block_manifest_names"`
}

// PathsDTO maps the host's theme and content directories to their public URLs.
// Relative directories are resolved against the project root.
type PathsDTO struct {
	ContentDir    string `yaml:"content_dir"`
	ContentURL    string `yaml:"content_url"`
	StylesheetDir string `yaml:"stylesheet_dir"`
	StylesheetURL string `yaml:"stylesheet_url"`
	TemplateDir   string `yaml:"template_dir"`
	TemplateURL   string `yaml:"template_url"`
}

// AssetDTO represents an asset registered on every render.
type AssetDTO struct {
	Manifest     string   `yaml:"manifest"`
	Asset        string   `yaml:"asset"`
	Handle       string   `yaml:"handle"`
	Dependencies []string `yaml:"dependencies"`
	InFooter     *bool    `yaml:"in_footer"`
	Version      string   `yaml:"version"`
	Enqueue      bool     `yaml:"enqueue"`
}
