package http

import (
	"time"

	"github.com/klwxsrx/hwstore-client/internal/storefront/api"
)

type ProductOut struct {
	ID       string            `json:"id"`
	Category string            `json:"category"`
	Name     string            `json:"name"`
	Brand    string            `json:"brand"`
	Price    int64             `json:"price"`
	InStock  int               `json:"inStock"`
	Specs    map[string]string `json:"specs"`
	ImageURL string            `json:"imageUrl"`
}

type ProductPageOut struct {
	Items    []ProductOut `json:"items"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Total    int          `json:"total"`
}

type PowerSupplyChoiceOut struct {
	RequiredWattage int          `json:"requiredWattage"`
	Items           []ProductOut `json:"items"`
}

type BasketItemOut struct {
	Product  ProductOut `json:"product"`
	Quantity int        `json:"quantity"`
}

type BasketOut struct {
	Items []BasketItemOut `json:"items"`
	Total int64           `json:"total"`
}

type OrderOut struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	Items     []BasketItemOut `json:"items"`
	Total     int64           `json:"total"`
}

type addBasketItemIn struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type powerSupplyIn struct {
	Parts []string `json:"parts"`
}

func toProduct(out ProductOut) api.Product {
	return api.Product{
		ID:       out.ID,
		Category: api.Category(out.Category),
		Name:     out.Name,
		Brand:    out.Brand,
		Price:    out.Price,
		InStock:  out.InStock,
		Specs:    out.Specs,
		ImageURL: out.ImageURL,
	}
}

func toProducts(outs []ProductOut) []api.Product {
	result := make([]api.Product, 0, len(outs))
	for _, out := range outs {
		result = append(result, toProduct(out))
	}
	return result
}

func toBasketItems(outs []BasketItemOut) []api.BasketItem {
	result := make([]api.BasketItem, 0, len(outs))
	for _, out := range outs {
		result = append(result, api.BasketItem{
			Product:  toProduct(out.Product),
			Quantity: out.Quantity,
		})
	}
	return result
}

func toBasket(out BasketOut) *api.Basket {
	return &api.Basket{
		Items: toBasketItems(out.Items),
		Total: out.Total,
	}
}

func toOrder(out OrderOut) api.Order {
	return api.Order{
		ID:        out.ID,
		Status:    out.Status,
		CreatedAt: out.CreatedAt,
		Items:     toBasketItems(out.Items),
		Total:     out.Total,
	}
}
