package cli_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/hwstore-client/internal/cli"
	"github.com/klwxsrx/hwstore-client/internal/devserver"
	appsession "github.com/klwxsrx/hwstore-client/internal/session/app/session"
	sessionhttp "github.com/klwxsrx/hwstore-client/internal/session/infra/http"
	"github.com/klwxsrx/hwstore-client/internal/session/infra/storage"
	"github.com/klwxsrx/hwstore-client/internal/session/infra/token"
	"github.com/klwxsrx/hwstore-client/internal/storefront"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
	"github.com/klwxsrx/hwstore-client/pkg/lazy"
	"github.com/klwxsrx/hwstore-client/pkg/log"
)

type deferredAuthorizer struct {
	appsession.Manager
}

type harness struct {
	url   string
	store appsession.TokenStore
}

func newHarness(t *testing.T) harness {
	t.Helper()

	backend := devserver.NewDependencyContainer(
		devserver.Config{
			SigningKey:   []byte("cli-test-key"),
			TokenTTL:     time.Hour,
			PasswordCost: bcrypt.MinCost,
			Users:        devserver.DefaultUsers(),
		},
		lazy.New(func() (log.Logger, error) {
			return log.NewStub(), nil
		}),
	)
	srv := pkghttp.NewServer("", backend.ServerOptions()...)
	backend.MustRegisterHTTPHandlers(srv)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return harness{url: ts.URL, store: storage.NewMemoryStore()}
}

// run executes one CLI invocation with a fresh process-like dependency graph sharing the token store.
func (h harness) run(t *testing.T, password string, args ...string) (string, error) {
	t.Helper()

	authorizer := &deferredAuthorizer{}
	client := pkghttp.NewClient(
		pkghttp.WithClientDestination("storefront", h.url),
		sessionhttp.WithSessionAuthorization(authorizer),
	)
	manager := appsession.NewManager(
		sessionhttp.NewUserAPI(client, sessionhttp.WithLogoutBackOff(func() backoff.BackOff {
			return &backoff.StopBackOff{}
		})),
		h.store,
		token.NewDecoder(),
	)
	authorizer.Manager = manager
	defer manager.Close()

	shop := storefront.NewDependencyContainer(lazy.New(func() (pkghttp.Client, error) {
		return client, nil
	}))

	root := cli.NewRootCmd(cli.Dependencies{
		Session: lazy.New(func() (appsession.Manager, error) {
			return manager, nil
		}),
		Catalog:      shop.CatalogService,
		Configurator: shop.ConfiguratorService,
		Basket:       shop.BasketService,
		Orders:       shop.OrderService,
		ReadPassword: func() ([]byte, error) {
			return []byte(password), nil
		},
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_SessionLifecycle(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "", "whoami")
	assert.ErrorContains(t, err, "not logged in")

	_, err = h.run(t, "wrong", "login", "--email", "demo@hwstore.dev")
	assert.ErrorContains(t, err, "invalid email or password")

	out, err := h.run(t, "demo", "login", "--email", "demo@hwstore.dev")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as demo@hwstore.dev (customer)")

	out, err = h.run(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "ID:       u1")

	out, err = h.run(t, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	_, err = h.run(t, "", "whoami")
	assert.ErrorContains(t, err, "not logged in")
}

func TestCLI_Shopping(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "", "products", "--category", "psu")
	require.NoError(t, err)
	assert.Contains(t, out, "psu-1")
	assert.Contains(t, out, "page 1 of 1, 3 products")

	_, err = h.run(t, "", "products", "--category", "toaster")
	assert.Error(t, err)

	out, err = h.run(t, "", "product", "cpu-1")
	require.NoError(t, err)
	assert.Contains(t, out, "32990.00")
	assert.Contains(t, out, "socket:")

	_, err = h.run(t, "", "product", "missing")
	assert.ErrorContains(t, err, "not found")

	out, err = h.run(t, "", "motherboards", "--cpu", "cpu-2")
	require.NoError(t, err)
	assert.Contains(t, out, "mb-2")
	assert.NotContains(t, out, "mb-1")

	out, err = h.run(t, "", "power-supplies", "cpu-1", "gpu-1", "mb-1")
	require.NoError(t, err)
	assert.Contains(t, out, "required: 500W")

	_, err = h.run(t, "", "basket")
	assert.ErrorContains(t, err, "not logged in")

	_, err = h.run(t, "", "login", "--email", "demo@hwstore.dev", "--password", "demo")
	require.NoError(t, err)

	out, err = h.run(t, "", "basket", "add", "cpu-1", "--qty", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 65980.00")

	out, err = h.run(t, "", "orders", "place")
	require.NoError(t, err)
	assert.Contains(t, out, "Order o1 placed, total 65980.00")

	out, err = h.run(t, "", "orders")
	require.NoError(t, err)
	assert.Contains(t, out, "o1")

	out, err = h.run(t, "", "basket")
	require.NoError(t, err)
	assert.Contains(t, out, "Basket is empty.")
}
