package domain

import (
	"regexp"
	"strings"
)

// Kind tells whether a resolved asset is registered as a script or a style.
type Kind uint8

const (
	// KindScript is a JavaScript bundle.
	KindScript Kind = iota
	// KindStyle is a CSS bundle.
	KindStyle
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k == KindStyle {
		return "style"
	}
	return "script"
}

var cssPattern = regexp.MustCompile(`\.css(\?.*)?$`)

// IsCSS naively checks whether a URI points to a CSS file, ignoring any query string.
func IsCSS(uri string) bool {
	return cssPattern.MatchString(uri)
}

// ScriptCounterpart swaps a trailing .css extension for .js.
// It returns the name unchanged when it does not end in .css.
func ScriptCounterpart(name string) string {
	if base, ok := strings.CutSuffix(name, ".css"); ok {
		return base + ".js"
	}
	return name
}

// Options configures how a single asset gets registered.
type Options struct {
	// Handle is the registry handle to use. Defaults to the requested asset name.
	Handle string
	// Dependencies are script or style handles the asset depends on.
	Dependencies []string
	// InFooter loads a script at the end of the page body. Defaults to true.
	InFooter *bool
	// Version overrides the computed cache-busting version.
	Version string
}

// LoadInFooter reports the effective in-footer flag.
func (o Options) LoadInFooter() bool {
	if o.InFooter == nil {
		return true
	}
	return *o.InFooter
}

// Footer returns a pointer to b, for use as Options.InFooter.
func Footer(b bool) *bool {
	return &b
}

// Request is a single call to register an asset from one or more candidate manifests.
type Request struct {
	// Manifests are candidate manifest paths; the first one that loads wins.
	Manifests []string
	// Asset is the logical asset name to look up, e.g. "editor.js".
	Asset string
	// Options configures the registration.
	Options Options
}

// HandleName returns the handle the request registers under.
func (r Request) HandleName() string {
	if r.Options.Handle != "" {
		return r.Options.Handle
	}
	return r.Asset
}

// Resolved is the outcome of resolving a Request against its manifest.
type Resolved struct {
	// URI is the public URI of the asset.
	URI string
	// Handle is the registry handle.
	Handle string
	// Version is the cache-busting version, empty when none applies.
	Version string
	// Kind is script or style.
	Kind Kind
	// StyleFallback is set when a .css request was satisfied by the .js dev-server wrapper.
	StyleFallback bool
	// FromManifest is false when the asset name itself was used as a path.
	FromManifest bool
	// ManifestPath is the manifest that was consulted, or the first candidate if none loaded.
	ManifestPath string
	// ManifestDir is the directory relative paths were resolved against.
	ManifestDir string
}

// Handles reports which script and style handles a registration produced.
// Either field is empty when nothing of that kind was registered.
type Handles struct {
	Script string `json:"script,omitempty" yaml:"script,omitempty"`
	Style  string `json:"style,omitempty"  yaml:"style,omitempty"`
}

// Empty reports whether nothing was registered.
func (h Handles) Empty() bool {
	return h.Script == "" && h.Style == ""
}
