package provider

import "context"

type requestIDContextKey struct{}

// WithRequestID attaches a caller-supplied request identifier to ctx. The
// provider uses it as the X-Request-ID header instead of generating one, so
// a call can be correlated across the app's own tracing.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}
