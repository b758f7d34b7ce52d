package trace

import "context"

type ctxKey struct{}

// FromContext returns the Tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, t)
}

type spanCtxKey struct{}

// CurrentSpanID returns the innermost span started with StartSpan, or 0.
func CurrentSpanID(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(spanCtxKey{}).(uint64)
	return id
}

// StartSpan begins a span under the context's current span and returns a
// context carrying the new span as parent for nested calls.
func StartSpan(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	s := Begin(FromContext(ctx), scope, name, CurrentSpanID(ctx))
	if id := s.ID(); id != 0 {
		ctx = context.WithValue(ctx, spanCtxKey{}, id)
	}
	return ctx, s
}
