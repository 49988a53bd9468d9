package http

import (
	"net/http"

	"github.com/klwxsrx/hwstore-client/internal/devserver/app/service"
	pkgauth "github.com/klwxsrx/hwstore-client/pkg/auth"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
)

type GetBasketHandler struct {
	shop service.Shop
}

func NewGetBasketHandler(shop service.Shop) GetBasketHandler {
	return GetBasketHandler{shop: shop}
}

func (h GetBasketHandler) Method() string {
	return http.MethodGet
}

func (h GetBasketHandler) Path() string {
	return "/basket"
}

func (h GetBasketHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := pkgauth.MustGetPrincipal[service.Principal](r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(toBasketOut(h.shop.Basket(r.Context(), principal.UserID)))
	return nil
}

type AddBasketItemHandler struct {
	shop service.Shop
}

func NewAddBasketItemHandler(shop service.Shop) AddBasketItemHandler {
	return AddBasketItemHandler{shop: shop}
}

func (h AddBasketItemHandler) Method() string {
	return http.MethodPost
}

func (h AddBasketItemHandler) Path() string {
	return "/basket/items"
}

func (h AddBasketItemHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := pkgauth.MustGetPrincipal[service.Principal](r.Context())
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[addBasketItemIn](), err)
	if err != nil {
		return err
	}

	basket, err := h.shop.AddToBasket(r.Context(), principal.UserID, in.ProductID, in.Quantity)
	if err != nil {
		return err
	}

	w.SetJSONBody(toBasketOut(basket))
	return nil
}

type RemoveBasketItemHandler struct {
	shop service.Shop
}

func NewRemoveBasketItemHandler(shop service.Shop) RemoveBasketItemHandler {
	return RemoveBasketItemHandler{shop: shop}
}

func (h RemoveBasketItemHandler) Method() string {
	return http.MethodDelete
}

func (h RemoveBasketItemHandler) Path() string {
	return "/basket/items/{productID}"
}

func (h RemoveBasketItemHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := pkgauth.MustGetPrincipal[service.Principal](r.Context())
	productID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("productID"), err)
	if err != nil {
		return err
	}

	basket, err := h.shop.RemoveFromBasket(r.Context(), principal.UserID, productID)
	if err != nil {
		return err
	}

	w.SetJSONBody(toBasketOut(basket))
	return nil
}

type ListOrdersHandler struct {
	shop service.Shop
}

func NewListOrdersHandler(shop service.Shop) ListOrdersHandler {
	return ListOrdersHandler{shop: shop}
}

func (h ListOrdersHandler) Method() string {
	return http.MethodGet
}

func (h ListOrdersHandler) Path() string {
	return "/orders"
}

func (h ListOrdersHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := pkgauth.MustGetPrincipal[service.Principal](r.Context())
	if err != nil {
		return err
	}

	orders := h.shop.Orders(r.Context(), principal.UserID)
	result := make([]orderOut, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderOut(order))
	}

	w.SetJSONBody(result)
	return nil
}

type PlaceOrderHandler struct {
	shop service.Shop
}

func NewPlaceOrderHandler(shop service.Shop) PlaceOrderHandler {
	return PlaceOrderHandler{shop: shop}
}

func (h PlaceOrderHandler) Method() string {
	return http.MethodPost
}

func (h PlaceOrderHandler) Path() string {
	return "/orders"
}

func (h PlaceOrderHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := pkgauth.MustGetPrincipal[service.Principal](r.Context())
	if err != nil {
		return err
	}

	order, err := h.shop.PlaceOrder(r.Context(), principal.UserID)
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusCreated)
	w.SetJSONBody(toOrderOut(order))
	return nil
}
