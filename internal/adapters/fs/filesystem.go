package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/assetloader/internal/core/ports"
)

var (
	_ ports.FileSystem = (*OSFS)(nil)
	_ ports.FileSystem = (*FSAdapter)(nil)
)

// OSFS implements ports.FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- manifest paths are supplied by the host
	return os.ReadFile(path)
}

// FSAdapter serves an fs.FS (for example fstest.MapFS or an embed.FS) as if it
// were mounted at Root.
type FSAdapter struct {
	FS   iofs.FS
	Root string // simulated mount point
}

// NewFSAdapter creates a new FSAdapter with the given root path and filesystem.
func NewFSAdapter(root string, fsys iofs.FS) *FSAdapter {
	return &FSAdapter{
		FS:   fsys,
		Root: filepath.Clean(root),
	}
}

// Stat returns file info for the given path.
func (m *FSAdapter) Stat(path string) (iofs.FileInfo, error) {
	return iofs.Stat(m.FS, m.toRelPath(path))
}

// ReadFile reads the entire file at path.
func (m *FSAdapter) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(m.FS, m.toRelPath(path))
}

// toRelPath converts an absolute path to a slash-separated path within the filesystem.
// Paths outside the root are returned unchanged so that fs operations fail with
// a "file not found" style error.
func (m *FSAdapter) toRelPath(absPath string) string {
	if !filepath.IsAbs(absPath) {
		return filepath.ToSlash(filepath.Clean(absPath))
	}

	absPath = filepath.Clean(absPath)
	if absPath == m.Root {
		return "."
	}

	// Special case: if root is "/", all absolute paths are within root
	prefix := m.Root + string(filepath.Separator)
	if m.Root == string(filepath.Separator) {
		prefix = m.Root
	}
	if !strings.HasPrefix(absPath, prefix) {
		return absPath
	}

	return filepath.ToSlash(strings.TrimPrefix(absPath, prefix))
}
