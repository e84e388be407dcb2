package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetloader/internal/adapters/logger"
	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with NO_COLOR set for deterministic output.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_InfoAndWarn(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("registered 3 scripts") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("No manifest specified when loading editor.js") },
			goldenName: "warn_basic",
		},
		{
			name:       "multiline warn",
			log:        func(l *logger.Logger) { l.Warn("warn1\nwarn2") },
			goldenName: "warn_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "zerr chain",
			err:        zerr.Wrap(errors.New("unexpected end of JSON input"), domain.ErrManifestParseFailed.Error()),
			goldenName: "error_chain_zerr",
		},
		{
			name: "metadata on every link",
			err: func() error {
				inner := zerr.With(domain.ErrPathOutsideContent, "path", "/srv/other/app.js")
				outer := zerr.Wrap(inner, "failed to resolve asset")
				return zerr.With(outer, "asset", "editor.js")
			}(),
			goldenName: "error_metadata_chain",
		},
		{
			name:       "stdlib chain is not split",
			err:        fmt.Errorf("render failed: %w", errors.New("connection refused")),
			goldenName: "error_chain_stdlib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.With(zerr.Wrap(errors.New("disk full"), "failed to read manifest"), "path", "build/manifest.json"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"msg":"operation failed"`)
	assert.Contains(t, out, "failed to read manifest")
	assert.NotContains(t, out, "✗", "JSON format should not have pretty markers")

	buf.Reset()
	lg.SetJSON(false)
	lg.Warn("back to pretty")
	assert.Equal(t, "! back to pretty\n", buf.String())
}

func TestLogger_SetOutput_KeepsMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestLogger_Span(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Span("loader.resolve", 1500*time.Microsecond, map[string]string{
		"uri":   "https://localhost:9090/build/editor.js",
		"asset": "editor.js",
	})
	assert.Equal(t, "loader.resolve (1.5ms) asset=editor.js uri=https://localhost:9090/build/editor.js\n", buf.String())

	buf.Reset()
	lg.SetJSON(true)
	lg.Span("loader.resolve", 1500*time.Microsecond, map[string]string{"asset": "editor.js"})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "loader.resolve", record["msg"])
	assert.Equal(t, "editor.js", record["asset"])
	assert.InDelta(t, float64(1500*time.Microsecond), record[logger.ElapsedKey], 0)
}
