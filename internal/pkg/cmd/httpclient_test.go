package cmd_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hwstore-client/internal/pkg/cmd"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
)

func TestHTTPClientFactory_MustInitClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get(pkghttp.DefaultRequestIDHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	t.Setenv("LOG_LEVEL", "disabled")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "5s")
	t.Setenv("STOREFRONT_SERVICE_URL", srv.URL)

	infra := cmd.NewInfrastructureContainer()
	client := infra.HTTPClientFactory.MustLoad().MustInitClient("storefront")

	ctx := infra.WithRequestID(context.Background(), "req-1")
	resp, err := client.NewRequest(ctx, pkghttp.Route{Method: http.MethodGet, URL: "/healthz"}).Send()
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestHTTPClientFactory_MissingServiceURL(t *testing.T) {
	t.Setenv("CATALOG_SERVICE_URL", "")

	_, err := cmd.ServiceURL("catalog")
	assert.Error(t, err)
	assert.Panics(t, func() {
		cmd.NewHTTPClientFactory().MustInitClient("catalog")
	})
}
