package domain

import "go.trai.ch/zerr"

var (
	// ErrNoManifestSpecified is reported when an asset is requested without any manifest path.
	ErrNoManifestSpecified = zerr.New("no manifest specified")

	// ErrEmptyAssetName is returned when an asset request has no target name.
	ErrEmptyAssetName = zerr.New("asset name is empty")

	// ErrManifestReadFailed is returned when a manifest file exists but cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read asset manifest")

	// ErrManifestParseFailed is returned when a manifest is not a JSON object.
	ErrManifestParseFailed = zerr.New("failed to parse asset manifest")

	// ErrDependencyConflict is reported when a handle is re-registered with dependencies
	// while the existing registration already declares its own.
	ErrDependencyConflict = zerr.New("script already registered with dependencies")

	// ErrPathOutsideContent is returned when a file path cannot be mapped to a public URI.
	ErrPathOutsideContent = zerr.New("path is outside of the theme and content directories")

	// ErrVersionUnavailable is returned when neither a content hash nor a modification time
	// could be computed for a manifest.
	ErrVersionUnavailable = zerr.New("failed to compute asset version")

	// ErrBlockMetadataReadFailed is returned when a block.json file cannot be read.
	ErrBlockMetadataReadFailed = zerr.New("failed to read block metadata")

	// ErrBlockMetadataParseFailed is returned when a block.json file cannot be parsed.
	ErrBlockMetadataParseFailed = zerr.New("failed to parse block metadata")

	// ErrBlockNameMissing is returned when block metadata has no name.
	ErrBlockNameMissing = zerr.New("block metadata has no name")

	// ErrBlockAlreadyRegistered is returned when a block type name is registered twice.
	ErrBlockAlreadyRegistered = zerr.New("block type already registered")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrInvalidEnvironmentType is returned when the configured environment type is unknown.
	ErrInvalidEnvironmentType = zerr.New("invalid environment type, expected 'local', 'development', 'staging' or 'production'")

	// ErrUnknownManifest is returned when a configured asset references an undefined manifest name.
	ErrUnknownManifest = zerr.New("unknown manifest")

	// ErrWatcherStartFailed is returned when the manifest watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start manifest watcher")

	// ErrRenderFailed is returned when the page markup cannot be written.
	ErrRenderFailed = zerr.New("failed to render page assets")
)
