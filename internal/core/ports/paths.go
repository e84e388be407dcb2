package ports

// URIResolver maps file-system paths to the public URIs the host serves them from.
//
//go:generate mockgen -source=paths.go -destination=mocks/mock_paths.go -package=mocks
type URIResolver interface {
	// FileURI returns the public URI for an absolute file path.
	FileURI(path string) (string, error)
}
