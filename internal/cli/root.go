package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	appsession "github.com/klwxsrx/hwstore-client/internal/session/app/session"
	"github.com/klwxsrx/hwstore-client/internal/storefront/api"
	"github.com/klwxsrx/hwstore-client/pkg/lazy"
)

var errNotLoggedIn = errors.New("not logged in, run `hwstore login` first")

type Dependencies struct {
	Session      lazy.Loader[appsession.Manager]
	Catalog      lazy.Loader[api.CatalogService]
	Configurator lazy.Loader[api.ConfiguratorService]
	Basket       lazy.Loader[api.BasketService]
	Orders       lazy.Loader[api.OrderService]

	// ReadPassword reads a password from the terminal without echo.
	ReadPassword func() ([]byte, error)
}

func NewRootCmd(deps Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:           "hwstore",
		Short:         "Browse the hardware store and manage your basket",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := deps.Session.Load()
			if err != nil {
				return fmt.Errorf("init session: %w", err)
			}

			manager.RestoreSession(cmd.Context())
			return nil
		},
	}

	root.AddCommand(
		newLoginCmd(deps),
		newLogoutCmd(deps),
		newWhoamiCmd(deps),
		newProductsCmd(deps),
		newProductCmd(deps),
		newMotherboardsCmd(deps),
		newPowerSuppliesCmd(deps),
		newBasketCmd(deps),
		newOrdersCmd(deps),
	)

	return root
}

func describeError(err error) error {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return errNotLoggedIn
	case errors.Is(err, api.ErrNotFound):
		return fmt.Errorf("not found: %w", err)
	default:
		return err
	}
}
