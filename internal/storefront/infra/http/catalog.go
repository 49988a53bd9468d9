package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/klwxsrx/hwstore-client/internal/storefront/api"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
)

var (
	listProductsRoute = pkghttp.Route{Method: http.MethodGet, URL: "/products"}
	getProductRoute   = pkghttp.Route{Method: http.MethodGet, URL: "/products/{productID}"}
)

type catalogService struct {
	client pkghttp.Client
}

func NewCatalogService(client pkghttp.Client) api.CatalogService {
	return catalogService{client: client}
}

func (s catalogService) List(ctx context.Context, category api.Category, page int) (*api.ProductPage, error) {
	if page < 1 {
		page = 1
	}

	req := s.client.NewRequest(ctx, listProductsRoute).
		SetQueryParam("page", strconv.Itoa(page))
	if category != "" {
		req = req.SetQueryParam("category", string(category))
	}

	resp, err := req.Send()
	if err != nil {
		return nil, fmt.Errorf("request catalog.list: %w", err)
	}

	err = checkStatus(resp.StatusCode(), http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("request catalog.list: %w", err)
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[ProductPageOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("catalog.list response: %w", err)
	}

	return &api.ProductPage{
		Items:    toProducts(body.Items),
		Page:     body.Page,
		PageSize: body.PageSize,
		Total:    body.Total,
	}, nil
}

func (s catalogService) Get(ctx context.Context, id string) (*api.Product, error) {
	resp, err := s.client.NewRequest(ctx, getProductRoute).
		SetPathParam("productID", id).
		Send()
	if err != nil {
		return nil, fmt.Errorf("request catalog.get: %w", err)
	}

	err = checkStatus(resp.StatusCode(), http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("request catalog.get: %w", err)
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[ProductOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("catalog.get response: %w", err)
	}

	product := toProduct(body)
	return &product, nil
}
