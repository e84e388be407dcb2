package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetloader/internal/adapters/fs"
)

func TestOSFS(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"editor.js":"editor.js"}`), 0o644))

	osfs := fs.NewOSFS()

	data, err := osfs.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"editor.js":"editor.js"}`, string(data))

	info, err := osfs.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = osfs.Stat(filepath.Join(tmpDir, "missing.json"))
	require.Error(t, err)
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"themes/child/build/manifest.json": {Data: []byte(`{}`)},
	}
	adapter := fs.NewFSAdapter("/srv/content", fsys)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "absolute path inside root", path: "/srv/content/themes/child/build/manifest.json"},
		{name: "relative path", path: "themes/child/build/manifest.json"},
		{name: "unclean absolute path", path: "/srv/content/themes/child/../child/build/manifest.json"},
		{name: "path outside root", path: "/etc/passwd", wantErr: true},
		{name: "sibling with shared prefix", path: "/srv/content-other/themes/child/build/manifest.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := adapter.ReadFile(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "{}", string(data))
		})
	}

	info, err := adapter.Stat("/srv/content/themes/child/build")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = adapter.Stat("/srv/content")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFSAdapter_SlashRoot(t *testing.T) {
	t.Parallel()

	adapter := fs.NewFSAdapter("/", fstest.MapFS{
		"srv/manifest.json": {Data: []byte(`{"a":"b"}`)},
	})

	data, err := adapter.ReadFile("/srv/manifest.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"b"}`, string(data))
}
