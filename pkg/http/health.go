package http

import (
	"encoding/json"
	"net/http"
)

const healthPath = "/healthz"

func WithHealthCheck() ServerOption {
	return func(s *server) {
		s.router.
			Name(getRouteName(http.MethodGet, healthPath)).
			Methods(http.MethodGet).
			Path(healthPath).
			HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(struct {
					Status string `json:"status"`
				}{
					Status: "OK",
				})
			})
	}
}
