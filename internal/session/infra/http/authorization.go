package http

import (
	"context"
	"net/http"

	"github.com/klwxsrx/hwstore-client/internal/session/app/session"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
)

// Authorizer is implemented by session.Manager.
type Authorizer interface {
	Authorize(http.Header)
	OnUnauthorized(context.Context)
}

var _ Authorizer = session.Manager(nil)

// WithSessionAuthorization attaches the session token to every request and ends the session on any 401 response.
func WithSessionAuthorization(manager Authorizer) pkghttp.ClientOption {
	return pkghttp.WithClientOptions(
		pkghttp.WithRequestHook(func(_ context.Context, header http.Header) error {
			manager.Authorize(header)
			return nil
		}),
		pkghttp.WithResponseHook(func(ctx context.Context, resp pkghttp.Response) {
			if resp.StatusCode() == http.StatusUnauthorized {
				manager.OnUnauthorized(ctx)
			}
		}),
	)
}
