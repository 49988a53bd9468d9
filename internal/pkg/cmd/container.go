package cmd

import (
	"context"
	"time"

	"github.com/klwxsrx/hwstore-client/pkg/env"
	"github.com/klwxsrx/hwstore-client/pkg/http"
	"github.com/klwxsrx/hwstore-client/pkg/lazy"
	"github.com/klwxsrx/hwstore-client/pkg/log"
	"github.com/klwxsrx/hwstore-client/pkg/observability"
)

const defaultHTTPClientTimeout = 30 * time.Second

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	Observer          lazy.Loader[observability.Observer]
	Logger            lazy.Loader[log.Logger]

	serverOpts []http.ServerOption
}

func NewInfrastructureContainer() *InfrastructureContainer {
	logger := loggerProvider()
	observer := observerProvider(logger)

	c := &InfrastructureContainer{
		HTTPClientFactory: httpClientFactoryProvider(observer, logger),
		Observer:          observer,
		Logger:            logger,
	}
	c.HTTPServer = httpServerProvider(observer, logger, func() []http.ServerOption {
		return c.serverOpts
	})
	return c
}

// AddServerOptions must be called before HTTPServer is loaded.
func (i *InfrastructureContainer) AddServerOptions(opts ...http.ServerOption) {
	i.serverOpts = append(i.serverOpts, opts...)
}

// WithRequestID marks every outgoing request made with ctx by the same generated ID.
func (i *InfrastructureContainer) WithRequestID(ctx context.Context, id string) context.Context {
	return i.Observer.MustLoad().WithRequestID(ctx, id)
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := log.ParseLevel(logLevelStr)
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	logger lazy.Loader[log.Logger],
	extraOpts func() []http.ServerOption,
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address, err := env.ParseWithDefault("DEVSERVER_ADDRESS", http.DefaultServerAddress)
		if err != nil {
			return nil, err
		}

		opts := []http.ServerOption{
			http.WithHealthCheck(),
			http.WithObservability(observer.MustLoad(), http.DefaultRequestIDHeader),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		}
		opts = append(opts, extraOpts()...)

		return http.NewServer(address, opts...), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		timeout, err := env.ParseWithDefault("HTTP_CLIENT_TIMEOUT", defaultHTTPClientTimeout)
		if err != nil {
			return HTTPClientFactory{}, err
		}

		return NewHTTPClientFactory(
			http.WithClientTimeout(timeout),
			http.WithRequestObservability(observer.MustLoad(), http.DefaultRequestIDHeader),
			http.WithRequestLogging(logger.MustLoad(), log.LevelDebug, log.LevelWarn),
		), nil
	})
}
