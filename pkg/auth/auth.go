package auth

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("not authenticated")

type (
	// Provider resolves a principal from a raw credential.
	Provider[T any] interface {
		Authenticate(ctx context.Context, credential string) (T, error)
	}

	Authentication[T any] interface {
		IsAuthenticated() bool
		Principal() *T
	}

	Auth[T any] struct {
		AuthPrincipal *T
	}
)

func (a Auth[T]) IsAuthenticated() bool {
	return a.AuthPrincipal != nil
}

func (a Auth[T]) Principal() *T {
	return a.AuthPrincipal
}
