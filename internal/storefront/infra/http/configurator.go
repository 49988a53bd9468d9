package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/klwxsrx/hwstore-client/internal/storefront/api"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
)

var (
	compatibleMotherboardsRoute = pkghttp.Route{Method: http.MethodGet, URL: "/configurator/motherboards"}
	suitablePowerSuppliesRoute  = pkghttp.Route{Method: http.MethodPost, URL: "/configurator/power-supplies"}
)

type configuratorService struct {
	client pkghttp.Client
}

func NewConfiguratorService(client pkghttp.Client) api.ConfiguratorService {
	return configuratorService{client: client}
}

func (s configuratorService) CompatibleMotherboards(ctx context.Context, cpuID string) ([]api.Product, error) {
	resp, err := s.client.NewRequest(ctx, compatibleMotherboardsRoute).
		SetQueryParam("cpu", cpuID).
		Send()
	if err != nil {
		return nil, fmt.Errorf("request configurator.motherboards: %w", err)
	}

	err = checkStatus(resp.StatusCode(), http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("request configurator.motherboards: %w", err)
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[[]ProductOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("configurator.motherboards response: %w", err)
	}

	return toProducts(body), nil
}

func (s configuratorService) SuitablePowerSupplies(ctx context.Context, partIDs []string) (*api.PowerSupplyChoice, error) {
	resp, err := s.client.NewRequest(ctx, suitablePowerSuppliesRoute).
		SetJSONBody(powerSupplyIn{Parts: partIDs}).
		Send()
	if err != nil {
		return nil, fmt.Errorf("request configurator.powerSupplies: %w", err)
	}

	err = checkStatus(resp.StatusCode(), http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("request configurator.powerSupplies: %w", err)
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[PowerSupplyChoiceOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("configurator.powerSupplies response: %w", err)
	}

	return &api.PowerSupplyChoice{
		RequiredWattage: body.RequiredWattage,
		Items:           toProducts(body.Items),
	}, nil
}
