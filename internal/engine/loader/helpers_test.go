package loader_test

import (
	"context"
	"testing"
	"testing/fstest"

	"go.trai.ch/assetloader/internal/adapters/fs"
	"go.trai.ch/assetloader/internal/adapters/host"
	"go.trai.ch/assetloader/internal/adapters/manifest"
	"go.trai.ch/assetloader/internal/adapters/paths"
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/assetloader/internal/core/ports/mocks"
	"go.trai.ch/assetloader/internal/engine/loader"
	"go.uber.org/mock/gomock"
)

const (
	devManifestPath    = "/root/content/themes/child/build/asset-manifest.json"
	prodManifestPath   = "/root/content/themes/child/dist/manifest.json"
	pluginManifestPath = "/root/content/plugins/acme/build/asset-manifest.json"

	devManifest = `{
		"editor.js": "https://localhost:9090/build/editor.js",
		"frontend-styles.js": "https://localhost:9090/build/frontend-styles.js"
	}`
	prodManifest = `{
		"frontend-styles.css": "frontend-styles.96a500e3dd1eb671f25e.css",
		"main.js": "main.js",
		"vendor.js": "https://cdn.example.com/lib/vendor.js"
	}`
	pluginManifest = `{
		"runtime.js": "https://localhost:8080/build/runtime.js",
		"editor.js": "https://localhost:8080/build/editor.js",
		"frontend.js": "https://localhost:8080/build/frontend.js",
		"editor.css": "editor.css"
	}`
)

func fixtureFiles() fstest.MapFS {
	return fstest.MapFS{
		"root/content/themes/child/build/asset-manifest.json": {Data: []byte(devManifest)},
		"root/content/themes/child/dist/manifest.json":        {Data: []byte(prodManifest)},
		"root/content/plugins/acme/build/asset-manifest.json": {Data: []byte(pluginManifest)},
	}
}

func testLayout() domain.Paths {
	return domain.Paths{
		ContentDir:    "/root/content",
		ContentURL:    "https://example.com/content",
		StylesheetDir: "/root/content/themes/child",
		StylesheetURL: "https://example.com/content/theme",
		TemplateDir:   "/root/content/themes/parent",
		TemplateURL:   "https://example.com/content/theme",
	}
}

type fixture struct {
	host    *host.Host
	session *loader.Session
	logger  *mocks.MockLogger
}

func newFixture(t *testing.T, env domain.Environment, files fstest.MapFS) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	fsys := fs.NewFSAdapter("/", files)
	h := host.New()

	s := loader.NewSession(loader.Deps{
		Registry:  h,
		Hooks:     h,
		Manifests: manifest.NewCache(manifest.NewReader(fsys)),
		Files:     fsys,
		URIs:      paths.NewResolver(testLayout()),
		Versions:  fs.NewVersioner(fsys),
		Logger:    log,
		Tracer:    newTracer(ctrl),
	}, env)

	return &fixture{host: h, session: s, logger: log}
}

func newTracer(ctrl *gomock.Controller) *mocks.MockTracer {
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()
	span.EXPECT().End().AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()

	return tracer
}

func request(manifestPath, asset string, opts domain.Options) domain.Request {
	return domain.Request{Manifests: []string{manifestPath}, Asset: asset, Options: opts}
}
