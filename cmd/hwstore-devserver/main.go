package main

import (
	"context"
	"crypto/rand"

	"github.com/klwxsrx/hwstore-client/internal/devserver"
	"github.com/klwxsrx/hwstore-client/internal/pkg/cmd"
	"github.com/klwxsrx/hwstore-client/pkg/env"
	pkgcmd "github.com/klwxsrx/hwstore-client/pkg/cmd"
)

const signingKeyLength = 32

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer()
	logger := infra.Logger.MustLoad()
	defer pkgcmd.HandleAppPanic(ctx, logger)

	container := devserver.NewDependencyContainer(
		devserver.Config{
			SigningKey: mustSigningKey(),
			TokenTTL:   env.Must(env.ParseWithDefault("DEVSERVER_TOKEN_TTL", devserver.DefaultTokenTTL)),
			Users:      devserver.DefaultUsers(),
		},
		infra.Logger,
	)
	infra.AddServerOptions(container.ServerOptions()...)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	logger.Info(ctx, "dev server is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
		container.PruneRevokedTokensJob(),
	)
}

func mustSigningKey() []byte {
	key := env.Must(env.ParseOptional[string]("DEVSERVER_SIGNING_KEY"))
	if key != nil && *key != "" {
		return []byte(*key)
	}

	random := make([]byte, signingKeyLength)
	_, err := rand.Read(random)
	if err != nil {
		panic(err)
	}
	return random
}
