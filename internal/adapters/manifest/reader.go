// Package manifest loads the JSON asset manifests written by bundler plugins.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reader reads and decodes manifest files. It keeps no state between calls.
type Reader struct {
	fs ports.FileSystem
}

// NewReader creates a new Reader backed by fsys.
func NewReader(fsys ports.FileSystem) *Reader {
	return &Reader{fs: fsys}
}

// Read loads the manifest at path. It returns nil and no error when the file is empty.
func (r *Reader) Read(path string) (*domain.Manifest, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	m, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return m, nil
}

// Parse decodes a JSON object of asset names to string values, keeping the
// document order. Entries whose value is not a string are skipped.
func Parse(data []byte) (*domain.Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, zerr.With(domain.ErrManifestParseFailed, "reason", "manifest is not a JSON object")
	}

	m := domain.NewManifest()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
		}

		var value *string
		if err := json.Unmarshal(raw, &value); err != nil || value == nil {
			continue
		}
		m.Set(key, *value)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, zerr.With(domain.ErrManifestParseFailed, "reason", "trailing data after manifest object")
	}

	return m, nil
}
