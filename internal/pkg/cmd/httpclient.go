package cmd

import (
	"fmt"

	"github.com/klwxsrx/hwstore-client/pkg/env"
	"github.com/klwxsrx/hwstore-client/pkg/http"
	"github.com/klwxsrx/hwstore-client/pkg/strings"
)

type HTTPClientFactory struct {
	impl http.ClientFactory
}

func NewHTTPClientFactory(
	opts ...http.ClientOption,
) HTTPClientFactory {
	return HTTPClientFactory{
		impl: http.NewClientFactory(opts...),
	}
}

// MustInitClient reads the base URL from <DESTINATION>_SERVICE_URL.
func (f HTTPClientFactory) MustInitClient(dest http.Destination, extraOpts ...http.ClientOption) http.Client {
	return f.impl.InitClient(dest, env.Must(ServiceURL(dest)), extraOpts...)
}

func ServiceURL(dest http.Destination) (string, error) {
	hostEnv := fmt.Sprintf("%s_SERVICE_URL", strings.ToScreamingSnakeCase(string(dest)))
	return env.Parse[string](hostEnv)
}
