package oteltrace

import (
	"context"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/skosovsky/cascade"
)

const (
	// ScopeName is the instrumentation scope of the tracer.
	ScopeName = "github.com/skosovsky/cascade/ext/oteltrace"
	// SpanName names every render span.
	SpanName = "cascade.render"
)

// Span attribute keys.
const (
	AttrPath  = attribute.Key("cascade.template.path")
	AttrFile  = attribute.Key("cascade.template.file")
	AttrBytes = attribute.Key("cascade.render.bytes")
)

// Ensures Renderer implements cascade.Renderer.
var _ cascade.Renderer = (*Renderer)(nil)

// Renderer records a span around each call to the wrapped renderer.
type Renderer struct {
	next   cascade.Renderer
	tracer trace.Tracer
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	provider trace.TracerProvider
}

// WithTracerProvider sets the provider. Defaults to otel.GetTracerProvider().
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		if tp != nil {
			c.provider = tp
		}
	}
}

// New wraps next. Panics if next is nil.
func New(next cascade.Renderer, opts ...Option) *Renderer {
	if next == nil {
		panic("oteltrace: Renderer must not be nil")
	}
	c := config{provider: otel.GetTracerProvider()}
	for _, opt := range opts {
		opt(&c)
	}
	return &Renderer{next: next, tracer: c.provider.Tracer(ScopeName)}
}

// RenderFile implements cascade.Renderer. Errors of the wrapped renderer are
// recorded on the span and returned unmodified.
func (r *Renderer) RenderFile(path string, data map[string]any, funcs cascade.FunctionSource) (string, error) {
	_, span := r.tracer.Start(context.Background(), SpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			AttrPath.String(path),
			AttrFile.String(filepath.Base(path)),
		),
	)
	defer span.End()

	out, err := r.next.RenderFile(path, data, funcs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return out, err
	}
	span.SetAttributes(AttrBytes.Int(len(out)))
	return out, nil
}
