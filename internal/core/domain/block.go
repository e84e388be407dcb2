package domain

import (
	"strconv"
	"strings"
)

// BlockType is a block registered from its metadata file.
type BlockType struct {
	// Name is the namespaced block name, e.g. "acme/hero".
	Name string
	// Dir is the directory containing block.json.
	Dir string
	// Metadata is the decoded block.json, with manifest-backed asset keys replaced by handles.
	Metadata map[string]any
	// Handles maps each rewritten asset key to its registered handle.
	Handles map[string]string
}

// AssetMetadata is the dependency file emitted next to a compiled entry point.
type AssetMetadata struct {
	Dependencies []string `json:"dependencies"`
	Version      string   `json:"version"`
}

// DefaultBlockAssetKeys lists the block.json keys resolved through manifests by default.
func DefaultBlockAssetKeys() []string {
	return []string{"editorScript", "script", "viewScript", "editorStyle"}
}

var blockHandleSuffixes = map[string]string{
	"editorScript": "editor-script",
	"script":       "script",
	"viewScript":   "view-script",
	"editorStyle":  "editor-style",
	"style":        "style",
	"viewStyle":    "view-style",
}

// BlockAssetHandle generates the handle for a block asset key the way the host does:
// the block name with slashes replaced by dashes, followed by the key suffix.
// Additional entries of an array value get their 1-based position appended.
func BlockAssetHandle(blockName, key string, index int) string {
	suffix, ok := blockHandleSuffixes[key]
	if !ok {
		suffix = kebab(key)
	}
	handle := strings.ReplaceAll(blockName, "/", "-") + "-" + suffix
	if index > 0 {
		handle += "-" + strconv.Itoa(index+1)
	}
	return handle
}

// IsStyleKey reports whether a block asset key holds styles.
func IsStyleKey(key string) bool {
	return strings.HasSuffix(key, "Style") || key == "style"
}

func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
