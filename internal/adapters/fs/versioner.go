package fs

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Versioner = (*Versioner)(nil)

// Versioner derives cache-busting versions from file contents or modification times.
type Versioner struct {
	fs ports.FileSystem
}

// NewVersioner creates a new Versioner reading through fsys.
func NewVersioner(fsys ports.FileSystem) *Versioner {
	return &Versioner{fs: fsys}
}

// ContentVersion returns the XXHash of a file's content as 16 hex digits.
func (v *Versioner) ContentVersion(path string) (string, error) {
	data, err := v.fs.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrVersionUnavailable.Error()), "path", path)
	}

	return domain.Digest(xxhash.Sum64(data)), nil
}

// ModTimeVersion returns the file's modification time in unix seconds.
func (v *Versioner) ModTimeVersion(path string) (string, error) {
	info, err := v.fs.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrVersionUnavailable.Error()), "path", path)
	}

	return strconv.FormatInt(info.ModTime().Unix(), 10), nil
}
