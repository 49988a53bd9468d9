package storefront

import (
	"github.com/klwxsrx/hwstore-client/internal/storefront/api"
	"github.com/klwxsrx/hwstore-client/internal/storefront/infra/http"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
	"github.com/klwxsrx/hwstore-client/pkg/lazy"
)

type DependencyContainer struct {
	CatalogService      lazy.Loader[api.CatalogService]
	ConfiguratorService lazy.Loader[api.ConfiguratorService]
	BasketService       lazy.Loader[api.BasketService]
	OrderService        lazy.Loader[api.OrderService]
}

// NewDependencyContainer expects a client that already carries session authorization.
func NewDependencyContainer(client lazy.Loader[pkghttp.Client]) *DependencyContainer {
	return &DependencyContainer{
		CatalogService: lazy.New(func() (api.CatalogService, error) {
			return http.NewCatalogService(client.MustLoad()), nil
		}),
		ConfiguratorService: lazy.New(func() (api.ConfiguratorService, error) {
			return http.NewConfiguratorService(client.MustLoad()), nil
		}),
		BasketService: lazy.New(func() (api.BasketService, error) {
			return http.NewBasketService(client.MustLoad()), nil
		}),
		OrderService: lazy.New(func() (api.OrderService, error) {
			return http.NewOrderService(client.MustLoad()), nil
		}),
	}
}
