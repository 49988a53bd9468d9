package auth

import (
	"context"
)

const authenticationContextKey contextKey = iota

type contextKey int

func WithAuthentication[T any](ctx context.Context, auth Authentication[T]) context.Context {
	return context.WithValue(ctx, authenticationContextKey, auth)
}

func GetAuthentication[T any](ctx context.Context) (Authentication[T], bool) {
	auth, ok := ctx.Value(authenticationContextKey).(Authentication[T])
	return auth, ok
}

// MustGetPrincipal returns ErrUnauthenticated when ctx has no authenticated principal of type T.
func MustGetPrincipal[T any](ctx context.Context) (T, error) {
	auth, ok := GetAuthentication[T](ctx)
	if !ok || !auth.IsAuthenticated() {
		var empty T
		return empty, ErrUnauthenticated
	}

	return *auth.Principal(), nil
}
