package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetloader/cmd/assetloader/commands"
	"go.trai.ch/assetloader/internal/adapters/host"
	"go.trai.ch/assetloader/internal/app"
	"go.trai.ch/assetloader/internal/build"
)

type mockApp struct {
	resolveFunc func(ctx context.Context, cwd string, assets []string, opts app.ResolveOptions) ([]app.Report, error)
	assetsFunc  func(ctx context.Context, cwd string, opts app.ResolveOptions) ([]string, error)
	renderFunc  func(ctx context.Context, cwd string, opts app.RequestOptions) (host.Page, error)
	watchFunc   func(ctx context.Context, cwd string, opts app.RequestOptions, out io.Writer, write func(io.Writer, host.Page) error) error
	logFormat   string
}

func (m *mockApp) Resolve(ctx context.Context, cwd string, assets []string, opts app.ResolveOptions) ([]app.Report, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, cwd, assets, opts)
	}
	return nil, nil
}

func (m *mockApp) Assets(ctx context.Context, cwd string, opts app.ResolveOptions) ([]string, error) {
	if m.assetsFunc != nil {
		return m.assetsFunc(ctx, cwd, opts)
	}
	return nil, nil
}

func (m *mockApp) Render(ctx context.Context, cwd string, opts app.RequestOptions) (host.Page, error) {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, cwd, opts)
	}
	return host.Page{}, nil
}

func (m *mockApp) Watch(
	ctx context.Context,
	cwd string,
	opts app.RequestOptions,
	out io.Writer,
	write func(io.Writer, host.Page) error,
) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, cwd, opts, out, write)
	}
	return nil
}

func (m *mockApp) SetLogFormat(flag string) {
	m.logFormat = flag
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ResolveOptions
		var capturedCwd string
		var capturedAssets []string

		mock := &mockApp{
			resolveFunc: func(_ context.Context, cwd string, assets []string, opts app.ResolveOptions) ([]app.Report, error) {
				capturedCwd, capturedAssets, captured = cwd, assets, opts
				return []app.Report{{
					Asset:        "editor.js",
					Handle:       "editor",
					Kind:         "script",
					URI:          "https://example.test/theme/build/editor.js",
					Version:      "0123456789abcdef",
					FromManifest: true,
				}}, nil
			},
		}

		out, err := execute(t, mock,
			"resolve", "editor.js",
			"-C", "/srv/site",
			"--manifest", "build/asset-manifest.json",
			"--manifest", "build/manifest.json",
			"--handle", "editor",
			"--admin", "--script-debug", "--env", "local",
			"--log-format", "json",
		)
		require.NoError(t, err)

		assert.Equal(t, "/srv/site", capturedCwd)
		assert.Equal(t, []string{"editor.js"}, capturedAssets)
		assert.Equal(t, []string{"build/asset-manifest.json", "build/manifest.json"}, captured.Manifests)
		assert.Equal(t, "editor", captured.Handle)
		assert.True(t, captured.Admin)
		assert.Equal(t, "local", captured.Environment)
		require.NotNil(t, captured.ScriptDebug)
		assert.True(t, *captured.ScriptDebug)
		assert.Equal(t, "json", mock.logFormat)

		assert.Contains(t, out, "editor")
		assert.Contains(t, out, "https://example.test/theme/build/editor.js")
		assert.Contains(t, out, "ver=0123456789abcdef")
	})

	t.Run("script debug stays unset without the flag", func(t *testing.T) {
		var captured app.ResolveOptions
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ string, _ []string, opts app.ResolveOptions) ([]app.Report, error) {
				captured = opts
				return nil, nil
			},
		}

		_, err := execute(t, mock, "resolve", "editor.js", "--name", "theme")
		require.NoError(t, err)
		assert.Nil(t, captured.ScriptDebug)
		assert.Equal(t, "theme", captured.ManifestName)
	})

	t.Run("prints json", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(context.Context, string, []string, app.ResolveOptions) ([]app.Report, error) {
				return []app.Report{{Asset: "main.css", Handle: "main.css", Kind: "style", URI: "main.css"}}, nil
			},
		}

		out, err := execute(t, mock, "resolve", "main.css", "--json")
		require.NoError(t, err)

		var reports []app.Report
		require.NoError(t, json.Unmarshal([]byte(out), &reports))
		assert.Equal(t, "style", reports[0].Kind)
	})

	t.Run("requires an asset", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "resolve")
		require.Error(t, err)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(context.Context, string, []string, app.ResolveOptions) ([]app.Report, error) {
				return nil, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "resolve", "editor.js")
		require.ErrorContains(t, err, "simulated error")
	})
}

func TestCommands_Assets(t *testing.T) {
	mock := &mockApp{
		assetsFunc: func(_ context.Context, _ string, opts app.ResolveOptions) ([]string, error) {
			assert.Equal(t, []string{"dist/manifest.json"}, opts.Manifests)
			return []string{"main.js", "main.css"}, nil
		},
	}

	out, err := execute(t, mock, "assets", "-m", "dist/manifest.json")
	require.NoError(t, err)
	assert.Equal(t, "main.js\nmain.css\n", out)
}

func TestCommands_Render(t *testing.T) {
	page := host.Page{Head: "<link />\n", Footer: "<script></script>\n"}
	mock := &mockApp{
		renderFunc: func(_ context.Context, _ string, opts app.RequestOptions) (host.Page, error) {
			assert.True(t, opts.Trace)
			return page, nil
		},
	}

	out, err := execute(t, mock, "render", "--trace")
	require.NoError(t, err)
	assert.Equal(t, page.String(), out)

	out, err = execute(t, mock, "render", "--trace", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"head":"<link />\n","footer":"<script></script>\n"}`, out)
}

func TestCommands_Watch(t *testing.T) {
	mock := &mockApp{
		watchFunc: func(_ context.Context, _ string, _ app.RequestOptions, out io.Writer, write func(io.Writer, host.Page) error) error {
			return write(out, host.Page{Footer: "<script></script>\n"})
		},
	}

	out, err := execute(t, mock, "watch")
	require.NoError(t, err)
	assert.Contains(t, out, "<!-- footer -->\n<script></script>\n")
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestCommands_VersionJSON(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version", "--json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, build.Version, info["version"])
	assert.Equal(t, build.Commit, info["commit"])
	assert.Equal(t, build.Date, info["date"])
	assert.NotEmpty(t, info["go"])
}
