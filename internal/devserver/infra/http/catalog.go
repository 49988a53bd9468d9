package http

import (
	"net/http"

	"github.com/klwxsrx/hwstore-client/internal/devserver/app/service"
	"github.com/klwxsrx/hwstore-client/internal/devserver/domain"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
)

type ListProductsHandler struct {
	shop service.Shop
}

func NewListProductsHandler(shop service.Shop) ListProductsHandler {
	return ListProductsHandler{shop: shop}
}

func (h ListProductsHandler) Method() string {
	return http.MethodGet
}

func (h ListProductsHandler) Path() string {
	return "/products"
}

func (h ListProductsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	category := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("category"), nil)
	page := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[int]("page"), nil)

	var filter domain.Category
	if category != nil {
		filter = domain.Category(*category)
	}
	pageNumber := 1
	if page != nil {
		pageNumber = *page
	}

	result, err := h.shop.ListProducts(r.Context(), filter, pageNumber)
	if err != nil {
		return err
	}

	w.SetJSONBody(toProductPageOut(result))
	return nil
}

type GetProductHandler struct {
	shop service.Shop
}

func NewGetProductHandler(shop service.Shop) GetProductHandler {
	return GetProductHandler{shop: shop}
}

func (h GetProductHandler) Method() string {
	return http.MethodGet
}

func (h GetProductHandler) Path() string {
	return "/products/{productID}"
}

func (h GetProductHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("productID"), nil)
	if err != nil {
		return err
	}

	product, err := h.shop.GetProduct(r.Context(), id)
	if err != nil {
		return err
	}

	w.SetJSONBody(toProductOut(product))
	return nil
}

type CompatibleMotherboardsHandler struct {
	shop service.Shop
}

func NewCompatibleMotherboardsHandler(shop service.Shop) CompatibleMotherboardsHandler {
	return CompatibleMotherboardsHandler{shop: shop}
}

func (h CompatibleMotherboardsHandler) Method() string {
	return http.MethodGet
}

func (h CompatibleMotherboardsHandler) Path() string {
	return "/configurator/motherboards"
}

func (h CompatibleMotherboardsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	cpuID, err := pkghttp.ParseRequest(r, pkghttp.QueryParameter[string]("cpu"), nil)
	if err != nil {
		return err
	}

	result, err := h.shop.CompatibleMotherboards(r.Context(), cpuID)
	if err != nil {
		return err
	}

	w.SetJSONBody(toProductsOut(result))
	return nil
}

type SuitablePowerSuppliesHandler struct {
	shop service.Shop
}

func NewSuitablePowerSuppliesHandler(shop service.Shop) SuitablePowerSuppliesHandler {
	return SuitablePowerSuppliesHandler{shop: shop}
}

func (h SuitablePowerSuppliesHandler) Method() string {
	return http.MethodPost
}

func (h SuitablePowerSuppliesHandler) Path() string {
	return "/configurator/power-supplies"
}

func (h SuitablePowerSuppliesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[powerSupplyIn](), nil)
	if err != nil {
		return err
	}

	result, err := h.shop.SuitablePowerSupplies(r.Context(), in.Parts)
	if err != nil {
		return err
	}

	w.SetJSONBody(powerSupplyChoiceOut{
		RequiredWattage: result.RequiredWattage,
		Items:           toProductsOut(result.Items),
	})
	return nil
}
