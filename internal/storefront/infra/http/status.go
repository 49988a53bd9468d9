package http

import (
	"net/http"

	"github.com/klwxsrx/hwstore-client/internal/storefront/api"
)

func checkStatus(code int, expected ...int) error {
	for _, e := range expected {
		if code == e {
			return nil
		}
	}

	switch code {
	case http.StatusBadRequest:
		return api.ErrInvalidRequest
	case http.StatusUnauthorized:
		return api.ErrUnauthorized
	case http.StatusNotFound:
		return api.ErrNotFound
	default:
		return &api.UnexpectedStatusError{Code: code}
	}
}
