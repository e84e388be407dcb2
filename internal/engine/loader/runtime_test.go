package loader_test

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetloader/internal/core/domain"
	"go.uber.org/mock/gomock"
)

const blockRuntimeURI = "https://example.com/content/plugins/acme/blocks/runtime.js"

func runtimeFiles(metadataPath string) fstest.MapFS {
	return fstest.MapFS{
		"root/content/plugins/acme/blocks/runtime.js": {Data: []byte("/* runtime */")},
		metadataPath: {
			Data:    []byte(`{"dependencies":[],"version":"abc"}`),
			ModTime: time.Unix(1700000000, 0),
		},
	}
}

func TestDetectRuntimeChunk_TwoLevelsUp(t *testing.T) {
	t.Parallel()

	f := newFixture(t, domain.Environment{}, runtimeFiles("root/content/plugins/acme/blocks/hero/build/index.asset.json"))

	handle := f.session.DetectRuntimeChunk("/root/content/plugins/acme/blocks/hero/build/index.asset.json")
	assert.Equal(t, domain.DefaultRuntimeHandle, handle)

	script, ok := f.host.Script(domain.DefaultRuntimeHandle)
	require.True(t, ok)
	assert.Equal(t, domain.Script{
		Handle:  domain.DefaultRuntimeHandle,
		Src:     blockRuntimeURI,
		Version: "1700000000",
	}, script)
}

func TestDetectRuntimeChunk_ReusesRegisteredHandle(t *testing.T) {
	t.Parallel()

	f := newFixture(t, domain.Environment{}, runtimeFiles("root/content/plugins/acme/blocks/hero/index.asset.json"))
	f.host.RegisterScript(domain.Script{Handle: "existing-rt", Src: blockRuntimeURI})

	handle := f.session.DetectRuntimeChunk("/root/content/plugins/acme/blocks/hero/index.asset.json")
	assert.Equal(t, "existing-rt", handle)

	_, ok := f.host.Script(domain.DefaultRuntimeHandle)
	assert.False(t, ok)
	assert.Len(t, f.host.Scripts(), 1)
}

func TestDetectRuntimeChunk_TooDeep(t *testing.T) {
	t.Parallel()

	// Four directories below runtime.js, one more than the search covers.
	metadata := "root/content/plugins/acme/blocks/a/b/c/index.asset.json"
	f := newFixture(t, domain.Environment{}, runtimeFiles(metadata))

	assert.Empty(t, f.session.DetectRuntimeChunk("/"+metadata))
	assert.Empty(t, f.host.Scripts())
}

func TestRegister_UnmappableManifestRuntimeIsSkipped(t *testing.T) {
	t.Parallel()

	files := fixtureFiles()
	files["srv/elsewhere/asset-manifest.json"] = &fstest.MapFile{Data: []byte(`{
		"runtime.js": "runtime.js",
		"app.js": "https://cdn.example.com/app.js"
	}`)}
	f := newFixture(t, domain.Environment{}, files)
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	handles, err := f.session.Register(context.Background(), request("/srv/elsewhere/asset-manifest.json", "app.js", domain.Options{}))
	require.NoError(t, err)
	assert.Equal(t, "app.js", handles.Script)

	script, ok := f.host.Script("app.js")
	require.True(t, ok)
	assert.Empty(t, script.Deps)
	assert.Len(t, f.host.Scripts(), 1)
}
