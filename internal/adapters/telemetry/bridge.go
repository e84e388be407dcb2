package telemetry

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/zerr"
)

// spanLogger is implemented by loggers that keep span fields structured.
type spanLogger interface {
	Span(name string, elapsed time.Duration, attrs map[string]string)
}

// Bridge implements sdktrace.SpanProcessor to report finished spans through the logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing; spans are reported when they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime())
	attrs := attributes(s)
	if s.Status().Code == codes.Error {
		line := FormatSpan(s.Name(), elapsed, attrs)
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Error(zerr.With(zerr.New(desc), "span", line))
		return
	}
	if sl, ok := b.logger.(spanLogger); ok {
		sl.Span(s.Name(), elapsed, attrs)
		return
	}
	b.logger.Info(FormatSpan(s.Name(), elapsed, attrs))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// FormatSpan renders a span as a single log line with its attributes sorted by key.
func FormatSpan(name string, d time.Duration, attrs map[string]string) string {
	var b strings.Builder
	b.WriteString(name)
	fmt.Fprintf(&b, " (%s)", d.Round(time.Microsecond))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		if attrs[k] == "" {
			continue
		}
		fmt.Fprintf(&b, " %s=%s", k, attrs[k])
	}
	return b.String()
}

func attributes(s sdktrace.ReadOnlySpan) map[string]string {
	out := make(map[string]string)
	for _, kv := range s.Attributes() {
		out[string(kv.Key)] = kv.Value.Emit()
	}
	return out
}
