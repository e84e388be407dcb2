package ports

// Versioner computes cache-busting version strings.
//
//go:generate mockgen -source=versioner.go -destination=mocks/mock_versioner.go -package=mocks
type Versioner interface {
	// ContentVersion returns a hash of the file's content.
	ContentVersion(path string) (string, error)

	// ModTimeVersion returns the file's modification time as a version string.
	ModTimeVersion(path string) (string, error)
}
