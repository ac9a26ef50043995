package internal

import (
	"context"
	"time"
)

type ctxKey string

const contextPrincipalKey ctxKey = "principal"

// PrincipalFromContext returns the authenticated principal's email, or ""
// when the request carries no valid session.
func PrincipalFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if email, ok := ctx.Value(contextPrincipalKey).(string); ok {
		return email
	}
	return ""
}

// ContextWithPrincipal stores the authenticated principal's email.
func ContextWithPrincipal(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, contextPrincipalKey, email)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
