package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan derives a context carrying a fresh span; the enclosing span, if
// any, is logged as parent
type NewSpan func(ctx context.Context, what string, args ...any) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string, args ...any) (context.Context, Span) {
		var parent Span
		if v := ctx.Value(SpanKey); v != nil {
			parent = v.(Span)
		}

		span := Span(rand.Text()[:10])
		ctx = context.WithValue(ctx, SpanKey, span)

		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span: "+what, args...)

		return ctx, span
	}
}
