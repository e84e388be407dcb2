package ports

import "go.trai.ch/assetloader/internal/core/domain"

// ManifestLoader loads asset manifests.
//
// Implementations memoize successful loads for the lifetime of a single request.
// A missing, empty or malformed manifest is reported as absent, never as an error.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// Load returns the manifest at path, or false if it cannot be used.
	Load(path string) (*domain.Manifest, bool)

	// Active returns the first candidate path whose manifest loads.
	Active(paths []string) (string, bool)
}
