package domain

import "go.trai.ch/zerr"

// EnvironmentType mirrors the host's notion of where it is running.
type EnvironmentType string

const (
	// EnvLocal is a developer machine.
	EnvLocal EnvironmentType = "local"
	// EnvDevelopment is a shared development deployment.
	EnvDevelopment EnvironmentType = "development"
	// EnvStaging is a pre-production deployment.
	EnvStaging EnvironmentType = "staging"
	// EnvProduction is a live deployment.
	EnvProduction EnvironmentType = "production"
)

// ParseEnvironmentType validates s. An empty string selects production.
func ParseEnvironmentType(s string) (EnvironmentType, error) {
	switch EnvironmentType(s) {
	case "":
		return EnvProduction, nil
	case EnvLocal, EnvDevelopment, EnvStaging, EnvProduction:
		return EnvironmentType(s), nil
	default:
		return "", zerr.With(ErrInvalidEnvironmentType, "environment", s)
	}
}

// Environment carries the host flags consulted while registering assets for one request.
type Environment struct {
	// ScriptDebug is true when the host serves unminified scripts; hot reloading requires it.
	ScriptDebug bool
	// Type gates how loudly development warnings are shown.
	Type EnvironmentType
	// Admin is true when the request renders an admin screen.
	Admin bool
}

// IsLocal reports whether warnings may be printed into the page.
func (e Environment) IsLocal() bool {
	return e.Type == EnvLocal
}
