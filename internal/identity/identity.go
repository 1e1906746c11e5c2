package identity

import "context"

type contextKey struct{}

// Anonymous is the principal used when nothing has been authenticated.
const Anonymous = "anonymous"

// WithPrincipal returns a context carrying the acting user.
func WithPrincipal(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// Principal returns the acting user for the context, or Anonymous.
func Principal(ctx context.Context) string {
	if user, ok := ctx.Value(contextKey{}).(string); ok && user != "" {
		return user
	}
	return Anonymous
}

// RunAs executes fn with the given principal on the context. The
// caller's context is left untouched, so the previous identity is in
// effect again as soon as RunAs returns, whether fn succeeded,
// returned an error, or panicked.
func RunAs(ctx context.Context, user string, fn func(ctx context.Context) error) error {
	return fn(WithPrincipal(ctx, user))
}
