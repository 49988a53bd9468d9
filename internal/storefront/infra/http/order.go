package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/klwxsrx/hwstore-client/internal/storefront/api"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
)

var (
	listOrdersRoute = pkghttp.Route{Method: http.MethodGet, URL: "/orders"}
	placeOrderRoute = pkghttp.Route{Method: http.MethodPost, URL: "/orders"}
)

type orderService struct {
	client pkghttp.Client
}

func NewOrderService(client pkghttp.Client) api.OrderService {
	return orderService{client: client}
}

func (s orderService) List(ctx context.Context) ([]api.Order, error) {
	resp, err := s.client.NewRequest(ctx, listOrdersRoute).Send()
	if err != nil {
		return nil, fmt.Errorf("request orders.list: %w", err)
	}

	err = checkStatus(resp.StatusCode(), http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("request orders.list: %w", err)
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[[]OrderOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("orders.list response: %w", err)
	}

	result := make([]api.Order, 0, len(body))
	for _, out := range body {
		result = append(result, toOrder(out))
	}
	return result, nil
}

func (s orderService) Place(ctx context.Context) (*api.Order, error) {
	resp, err := s.client.NewRequest(ctx, placeOrderRoute).Send()
	if err != nil {
		return nil, fmt.Errorf("request orders.place: %w", err)
	}

	err = checkStatus(resp.StatusCode(), http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("request orders.place: %w", err)
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[OrderOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("orders.place response: %w", err)
	}

	order := toOrder(body)
	return &order, nil
}
