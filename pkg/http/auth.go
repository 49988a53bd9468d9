package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/klwxsrx/hwstore-client/pkg/auth"
)

const bearerAuthScheme = "bearer"

type AuthTokenProvider func(*http.Request) (string, bool)

func WithAuth[T any](provider auth.Provider[T], tokenProviders ...AuthTokenProvider) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			var token string
			for _, tokenProvider := range tokenProviders {
				token, ok = tokenProvider(r)
				if ok {
					break
				}
			}
			if !ok {
				handler.ServeHTTP(w, r.WithContext(auth.WithAuthentication[T](r.Context(), auth.Auth[T]{})))
				return
			}

			principal, err := provider.Authenticate(r.Context(), token)
			if errors.Is(err, auth.ErrUnauthenticated) {
				handler.ServeHTTP(w, r.WithContext(auth.WithAuthentication[T](r.Context(), auth.Auth[T]{})))
				return
			}
			if err != nil {
				writeHandlerResult(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			ctx := auth.WithAuthentication[T](r.Context(), auth.Auth[T]{AuthPrincipal: &principal})
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
}

func WithAuthenticationRequirement[T any]() HandlerMiddleware {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authentication, ok := auth.GetAuthentication[T](r.Context())
			if !ok || !authentication.IsAuthenticated() {
				writeHandlerResult(r.Context(), w, http.StatusUnauthorized, auth.ErrUnauthenticated)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}

func BearerTokenProvider(r *http.Request) (string, bool) {
	header, err := ParseRequest(r, Header[string]("Authorization"), nil)
	if err != nil {
		return "", false
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, bearerAuthScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeHandlerResult(ctx context.Context, w http.ResponseWriter, httpCode int, err error) {
	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	w.WriteHeader(httpCode)
}
