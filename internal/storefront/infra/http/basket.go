package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/klwxsrx/hwstore-client/internal/storefront/api"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
)

var (
	getBasketRoute        = pkghttp.Route{Method: http.MethodGet, URL: "/basket"}
	addBasketItemRoute    = pkghttp.Route{Method: http.MethodPost, URL: "/basket/items"}
	removeBasketItemRoute = pkghttp.Route{Method: http.MethodDelete, URL: "/basket/items/{productID}"}
)

type basketService struct {
	client pkghttp.Client
}

func NewBasketService(client pkghttp.Client) api.BasketService {
	return basketService{client: client}
}

func (s basketService) Get(ctx context.Context) (*api.Basket, error) {
	return s.send("basket.get", s.client.NewRequest(ctx, getBasketRoute))
}

func (s basketService) AddItem(ctx context.Context, productID string, quantity int) (*api.Basket, error) {
	return s.send("basket.addItem", s.client.NewRequest(ctx, addBasketItemRoute).
		SetJSONBody(addBasketItemIn{ProductID: productID, Quantity: quantity}),
	)
}

func (s basketService) RemoveItem(ctx context.Context, productID string) (*api.Basket, error) {
	return s.send("basket.removeItem", s.client.NewRequest(ctx, removeBasketItemRoute).
		SetPathParam("productID", productID),
	)
}

func (s basketService) send(name string, req pkghttp.Request) (*api.Basket, error) {
	resp, err := req.Send()
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", name, err)
	}

	err = checkStatus(resp.StatusCode(), http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", name, err)
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[BasketOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("%s response: %w", name, err)
	}

	return toBasket(body), nil
}
