package ports

import "go.trai.ch/assetloader/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration file by walking up from cwd and parses it.
	Load(cwd string) (*domain.Config, error)

	// DiscoverRoot walks up from cwd to find the directory containing the configuration file.
	DiscoverRoot(cwd string) (string, error)
}
