package blocks_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetloader/internal/adapters/fs"
	"go.trai.ch/assetloader/internal/adapters/host"
	"go.trai.ch/assetloader/internal/adapters/manifest"
	"go.trai.ch/assetloader/internal/adapters/paths"
	"go.trai.ch/assetloader/internal/adapters/telemetry"
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports/mocks"
	"go.trai.ch/assetloader/internal/engine/blocks"
	"go.trai.ch/assetloader/internal/engine/loader"
	"go.uber.org/mock/gomock"
)

const heroDir = "/root/content/plugins/acme/blocks/hero"

func heroFiles() fstest.MapFS {
	return fstest.MapFS{
		"root/content/plugins/acme/blocks/hero/block.json": {Data: []byte(`{
			"apiVersion": 3,
			"name": "acme/hero",
			"title": "Hero",
			"editorScript": "file:./index.js",
			"viewScript": ["file:./view.js", "wp-interactivity"],
			"editorStyle": "file:./index.css",
			"style": "file:./style.css",
			"attributes": {"heading": {"type": "string"}}
		}`)},
		"root/content/plugins/acme/blocks/hero/asset-manifest.json": {Data: []byte(`{
			"index.js": "https://localhost:8080/hero/index.js",
			"view.js": "view.abcdef12.js",
			"index.css": "index.css",
			"style.css": "style.css"
		}`)},
		"root/content/plugins/acme/blocks/hero/index.asset.json": {Data: []byte(`{
			"dependencies": ["wp-blocks", "wp-react-refresh-runtime"],
			"version": "abc123"
		}`)},
		"root/content/plugins/acme/blocks/runtime.js":          {Data: []byte(`/* runtime */`)},
		"root/content/plugins/acme/blocks/broken/block.json":   {Data: []byte(`{"name": `)},
		"root/content/plugins/acme/blocks/nameless/block.json": {Data: []byte(`{"title": "Nameless"}`)},
	}
}

type fixture struct {
	host      *host.Host
	registrar *blocks.Registrar
	logger    *mocks.MockLogger
}

func newFixture(t *testing.T, env domain.Environment, assetKeys []string) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	fsys := fs.NewFSAdapter("/", heroFiles())
	h := host.New()

	session := loader.NewSession(loader.Deps{
		Registry:  h,
		Hooks:     h,
		Manifests: manifest.NewCache(manifest.NewReader(fsys)),
		Files:     fsys,
		URIs: paths.NewResolver(domain.Paths{
			ContentDir: "/root/content",
			ContentURL: "https://example.com/content",
		}),
		Versions: fs.NewVersioner(fsys),
		Logger:   log,
		Tracer:   telemetry.NewNoOpTracer(),
	}, env)

	return &fixture{
		host:      h,
		registrar: blocks.NewRegistrar(session, fsys, h, log, assetKeys, nil),
		logger:    log,
	}
}

func TestRegisterBlock(t *testing.T) {
	t.Parallel()

	f := newFixture(t, domain.Environment{ScriptDebug: true}, nil)

	block, err := f.registrar.RegisterBlock(context.Background(), heroDir+"/block.json")
	require.NoError(t, err)

	assert.Equal(t, "acme/hero", block.Name)
	assert.Equal(t, heroDir, block.Dir)
	assert.Equal(t, map[string]string{
		"editorScript": "acme-hero-editor-script",
		"viewScript":   "acme-hero-view-script",
		"editorStyle":  "acme-hero-editor-style",
	}, block.Handles)

	assert.Equal(t, "acme-hero-editor-script", block.Metadata["editorScript"])
	assert.Equal(t, []any{"acme-hero-view-script", "wp-interactivity"}, block.Metadata["viewScript"])
	assert.Equal(t, "acme-hero-editor-style", block.Metadata["editorStyle"])
	assert.Equal(t, "file:./style.css", block.Metadata["style"], "keys outside the asset list are left alone")
	assert.Equal(t, "Hero", block.Metadata["title"])

	editor, ok := f.host.Script("acme-hero-editor-script")
	require.True(t, ok)
	assert.Equal(t, "https://localhost:8080/hero/index.js", editor.Src)
	assert.Equal(t, "abc123", editor.Version)
	assert.Equal(t, []string{"wp-blocks", "wp-react-refresh-runtime", domain.DefaultRuntimeHandle}, editor.Deps)

	runtime, ok := f.host.Script(domain.DefaultRuntimeHandle)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/content/plugins/acme/blocks/runtime.js", runtime.Src)
	assert.False(t, runtime.InFooter)

	view, ok := f.host.Script("acme-hero-view-script")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/content/plugins/acme/blocks/hero/view.abcdef12.js", view.Src)
	assert.Empty(t, view.Deps)
	assert.Empty(t, view.Version)

	style, ok := f.host.Style("acme-hero-editor-style")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/content/plugins/acme/blocks/hero/index.css", style.Src)

	registered, ok := f.host.BlockType("acme/hero")
	require.True(t, ok)
	assert.Equal(t, block.Handles, registered.Handles)
}

func TestRegisterBlock_Directory(t *testing.T) {
	t.Parallel()

	f := newFixture(t, domain.Environment{ScriptDebug: true}, nil)

	block, err := f.registrar.RegisterBlock(context.Background(), heroDir)
	require.NoError(t, err)
	assert.Equal(t, "acme/hero", block.Name)
}

func TestRegisterBlock_CustomAssetKeys(t *testing.T) {
	t.Parallel()

	f := newFixture(t, domain.Environment{ScriptDebug: true}, []string{"style"})

	block, err := f.registrar.RegisterBlock(context.Background(), heroDir)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"style": "acme-hero-style"}, block.Handles)
	assert.Equal(t, "file:./index.js", block.Metadata["editorScript"])
	assert.Len(t, f.host.Scripts(), 0)

	style, ok := f.host.Style("acme-hero-style")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/content/plugins/acme/blocks/hero/style.css", style.Src)
}

func TestRegisterBlock_WarnsWithoutScriptDebug(t *testing.T) {
	t.Parallel()

	f := newFixture(t, domain.Environment{Type: domain.EnvProduction}, nil)
	f.logger.EXPECT().Warn(loader.ScriptDebugWarning).Times(1)

	_, err := f.registrar.RegisterBlock(context.Background(), heroDir)
	require.NoError(t, err)
}

func TestRegisterBlock_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		err  error
	}{
		{name: "missing", path: "/root/content/plugins/acme/blocks/missing/block.json", err: domain.ErrBlockMetadataReadFailed},
		{name: "malformed", path: "/root/content/plugins/acme/blocks/broken/block.json", err: domain.ErrBlockMetadataParseFailed},
		{name: "nameless", path: "/root/content/plugins/acme/blocks/nameless", err: domain.ErrBlockNameMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, domain.Environment{}, nil)

			_, err := f.registrar.RegisterBlock(context.Background(), tt.path)
			require.ErrorContains(t, err, tt.err.Error())
		})
	}
}

func TestRegisterBlock_Twice(t *testing.T) {
	t.Parallel()

	f := newFixture(t, domain.Environment{ScriptDebug: true}, nil)

	_, err := f.registrar.RegisterBlock(context.Background(), heroDir)
	require.NoError(t, err)
	scripts, styles := f.host.Scripts(), f.host.Styles()

	// A rejected block touches no registrations and logs nothing.
	_, err = f.registrar.RegisterBlock(context.Background(), heroDir)
	require.ErrorContains(t, err, domain.ErrBlockAlreadyRegistered.Error())
	assert.Equal(t, scripts, f.host.Scripts())
	assert.Equal(t, styles, f.host.Styles())
}
