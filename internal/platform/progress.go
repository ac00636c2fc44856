package platform

import (
	"context"
	"fmt"
)

// ProgressFunc receives one human-readable line per finished page.
type ProgressFunc func(msg string)

type progressKey struct{}

// WithProgress attaches fn to ctx. A nil fn masks a callback set further up.
func WithProgress(ctx context.Context, fn ProgressFunc) context.Context {
	return context.WithValue(ctx, progressKey{}, fn)
}

// Progress returns the callback carried by ctx, or a no-op under the MCP
// server where nobody listens.
func Progress(ctx context.Context) ProgressFunc {
	if fn, _ := ctx.Value(progressKey{}).(ProgressFunc); fn != nil {
		return fn
	}
	return func(string) {}
}

// Progressf formats a progress line and hands it to the callback in ctx.
func Progressf(ctx context.Context, format string, args ...any) {
	Progress(ctx)(fmt.Sprintf(format, args...))
}
