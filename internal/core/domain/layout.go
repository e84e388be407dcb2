package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "assetloader.yaml"

	// RuntimeChunkName is the manifest key and file name of a single shared webpack runtime.
	RuntimeChunkName = "runtime.js"

	// RuntimeHandlePrefix prefixes handles generated for runtime chunks found in a manifest.
	RuntimeHandlePrefix = "runtime-"

	// DefaultRuntimeHandle is used for a runtime chunk discovered on disk that nothing registered yet.
	DefaultRuntimeHandle = "undefined-runtime"

	// HMRRuntimeHandle is the script handle of the react-refresh runtime injected for hot reloading.
	HMRRuntimeHandle = "wp-react-refresh-runtime"

	// DataScriptHandle is the host's data store script, needed to raise editor notices.
	DataScriptHandle = "wp-data"

	// BlockMetadataFileName is the name of a block type's metadata file.
	BlockMetadataFileName = "block.json"

	// AssetMetadataSuffix is appended to a compiled entry's base name to locate its dependency file.
	AssetMetadataSuffix = ".asset.json"

	// FilePathPrefix marks a block metadata value as a path relative to block.json.
	FilePathPrefix = "file:"

	// RuntimeSearchDepth is how many directory levels are checked for a runtime chunk,
	// starting with the directory of the asset metadata file itself.
	RuntimeSearchDepth = 3
)

// DefaultBlockManifestNames lists the manifest file names looked up next to a block.json, in order.
func DefaultBlockManifestNames() []string {
	return []string{"asset-manifest.json", "manifest.json"}
}
