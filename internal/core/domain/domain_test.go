package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetloader/internal/core/domain"
)

func TestIsCSS(t *testing.T) {
	tests := []struct {
		uri      string
		expected bool
		message  string
	}{
		{"not-a-css-file.js", false, "Should return false for JS assets"},
		{"css-file.css", true, "Should return true for CSS assets"},
		{"css-file.css?with-query=params", true, "Should return true for CSS assets with query parameters"},
		{"https://localhost:9090/build/frontend-styles.js", false, "Should return false for dev server JS wrappers"},
		{"styles.css.map", false, "Should return false for source maps"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.IsCSS(tt.uri), tt.message)
		})
	}
}

func TestScriptCounterpart(t *testing.T) {
	assert.Equal(t, "frontend-styles.js", domain.ScriptCounterpart("frontend-styles.css"))
	assert.Equal(t, "editor.js", domain.ScriptCounterpart("editor.js"))
	assert.Equal(t, "a.css.js", domain.ScriptCounterpart("a.css.css"))
}

func TestManifest_PreservesOrder(t *testing.T) {
	m := domain.NewManifest(
		[2]string{"editor.js", "editor.123.js"},
		[2]string{"runtime.js", "runtime.456.js"},
		[2]string{"editor.js", "editor.789.js"},
	)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"editor.789.js", "runtime.456.js"}, m.Values())

	v, ok := m.Get("editor.js")
	require.True(t, ok)
	assert.Equal(t, "editor.789.js", v)

	_, ok = m.Get("missing.js")
	assert.False(t, ok)
}

func TestManifest_EmptyValueIsAbsent(t *testing.T) {
	m := domain.NewManifest([2]string{"empty.js", ""})

	_, ok := m.Get("empty.js")
	assert.False(t, ok)
}

func TestManifest_NilIsEmpty(t *testing.T) {
	var m *domain.Manifest

	_, ok := m.Get("editor.js")
	assert.False(t, ok)
	assert.Zero(t, m.Len())
	assert.Nil(t, m.Values())
}

func TestLocalhostHTTPS(t *testing.T) {
	assert.True(t, domain.IsLocalhostHTTPS("https://localhost:9000/some-script.js"))
	assert.False(t, domain.IsLocalhostHTTPS("http://localhost:9000/some-script.js"))
	assert.False(t, domain.IsLocalhostHTTPS("https://some-non-local-domain.com/some-script.js"))

	origins := domain.LocalhostHTTPSOrigins([]string{
		"https://localhost:9090/build/editor.js",
		"https://localhost:9090/build/frontend.js",
		"https://localhost:8080/other.js",
		"frontend-styles.96a500e.css",
	})
	assert.Equal(t, []string{"https://localhost:9090", "https://localhost:8080"}, origins)
}

func TestIsAbsoluteURI(t *testing.T) {
	assert.True(t, domain.IsAbsoluteURI("https://localhost:9090/build/editor.js"))
	assert.True(t, domain.IsAbsoluteURI("//cdn.example.com/editor.js"))
	assert.False(t, domain.IsAbsoluteURI("build/editor.js"))
}

func TestDigest(t *testing.T) {
	assert.Equal(t, "000000000000002a", domain.Digest(42))
	assert.Equal(t, "ffffffffffffffff", domain.Digest(^uint64(0)))
}

func TestIsDevServerURI(t *testing.T) {
	assert.True(t, domain.IsDevServerURI("https://localhost:9090/build/editor.js"))
	assert.True(t, domain.IsDevServerURI("http://127.0.0.1:3000/app.js"))
	assert.True(t, domain.IsDevServerURI("//localhost:8080/app.js"))
	assert.False(t, domain.IsDevServerURI("https://cdn.example.com/app.js"))
	assert.False(t, domain.IsDevServerURI("//cdn.example.com/app.js"))
	assert.False(t, domain.IsDevServerURI("build/editor.js"))
}

func TestSplitRuntimeDeps(t *testing.T) {
	own, runtime := domain.SplitRuntimeDeps([]string{"wp-element", "runtime-0123456789abcdef", "undefined-runtime", "lodash"})

	assert.Equal(t, []string{"wp-element", "lodash"}, own)
	assert.Equal(t, []string{"runtime-0123456789abcdef", "undefined-runtime"}, runtime)
}

func TestBlockAssetHandle(t *testing.T) {
	assert.Equal(t, "acme-hero-editor-script", domain.BlockAssetHandle("acme/hero", "editorScript", 0))
	assert.Equal(t, "acme-hero-view-script-2", domain.BlockAssetHandle("acme/hero", "viewScript", 1))
	assert.Equal(t, "acme-hero-editor-style", domain.BlockAssetHandle("acme/hero", "editorStyle", 0))
	assert.Equal(t, "acme-hero-custom-thing", domain.BlockAssetHandle("acme/hero", "customThing", 0))
}

func TestParseEnvironmentType(t *testing.T) {
	env, err := domain.ParseEnvironmentType("")
	require.NoError(t, err)
	assert.Equal(t, domain.EnvProduction, env)

	env, err = domain.ParseEnvironmentType("local")
	require.NoError(t, err)
	assert.Equal(t, domain.EnvLocal, env)

	_, err = domain.ParseEnvironmentType("moon")
	require.ErrorContains(t, err, domain.ErrInvalidEnvironmentType.Error())
}

func TestOptions_Defaults(t *testing.T) {
	var opts domain.Options
	assert.True(t, opts.LoadInFooter())

	opts.InFooter = domain.Footer(false)
	assert.False(t, opts.LoadInFooter())

	req := domain.Request{Asset: "editor.js"}
	assert.Equal(t, "editor.js", req.HandleName())

	req.Options.Handle = "custom"
	assert.Equal(t, "custom", req.HandleName())
}
