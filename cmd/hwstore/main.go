package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/klwxsrx/hwstore-client/internal/cli"
	"github.com/klwxsrx/hwstore-client/internal/pkg/cmd"
	"github.com/klwxsrx/hwstore-client/internal/session"
	appsession "github.com/klwxsrx/hwstore-client/internal/session/app/session"
	"github.com/klwxsrx/hwstore-client/internal/storefront"
	pkgcmd "github.com/klwxsrx/hwstore-client/pkg/cmd"
)

func main() {
	infra := cmd.NewInfrastructureContainer()
	ctx := infra.WithRequestID(context.Background(), uuid.NewString())
	logger := infra.Logger.MustLoad()
	defer pkgcmd.HandleAppPanic(ctx, logger)

	sessionContainer := session.NewDependencyContainer(ctx, infra.Logger, infra.HTTPClientFactory,
		appsession.WithStateListener(func(snapshot appsession.Snapshot) {
			logger.WithField("state", snapshot.State.String()).Debug(ctx, "session state changed")
		}),
	)
	shop := storefront.NewDependencyContainer(sessionContainer.AuthorizedClient)

	root := cli.NewRootCmd(cli.Dependencies{
		Session:      sessionContainer.Manager,
		Catalog:      shop.CatalogService,
		Configurator: shop.ConfiguratorService,
		Basket:       shop.BasketService,
		Orders:       shop.OrderService,
		ReadPassword: func() ([]byte, error) {
			return term.ReadPassword(int(os.Stdin.Fd()))
		},
	})

	err := root.ExecuteContext(ctx)
	sessionContainer.Close(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
