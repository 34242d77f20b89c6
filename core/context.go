package core

import "context"

// Context keys for evaluation options
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
	randSourceKey     contextKey = "randSource"
)

// WithSuppressHeader marks the context so executors skip their informational log lines.
// The MCP server uses it to keep tool calls quiet.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}

// WithRandSource pins the random source used for the momentum trend.
func WithRandSource(ctx context.Context, rng RandSource) context.Context {
	return context.WithValue(ctx, randSourceKey, rng)
}

// randSourceFrom returns the pinned random source, or a new one built from seed.
func randSourceFrom(ctx context.Context, seed uint64) RandSource {
	if rng, ok := ctx.Value(randSourceKey).(RandSource); ok && rng != nil {
		return rng
	}
	return NewRandSource(seed)
}
