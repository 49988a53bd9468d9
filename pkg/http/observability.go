package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/hwstore-client/pkg/observability"
)

// WithObservability takes the request ID from the given header or generates a new one.
func WithObservability(observer observability.Observer, requestIDHeaderName string) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeaderName)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeaderName, id)
			handler.ServeHTTP(w, r.WithContext(observer.WithRequestID(r.Context(), id)))
		})
	})
}
