package http

import (
	"time"

	"github.com/klwxsrx/hwstore-client/internal/devserver/app/service"
	"github.com/klwxsrx/hwstore-client/internal/devserver/domain"
)

type userOut struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	AccountCreatedAt time.Time `json:"accountCreatedAt"`
	PhotoURL         *string   `json:"photoUrl"`
}

type productOut struct {
	ID       string            `json:"id"`
	Category string            `json:"category"`
	Name     string            `json:"name"`
	Brand    string            `json:"brand"`
	Price    int64             `json:"price"`
	InStock  int               `json:"inStock"`
	Specs    map[string]string `json:"specs"`
	ImageURL string            `json:"imageUrl"`
}

type productPageOut struct {
	Items    []productOut `json:"items"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Total    int          `json:"total"`
}

type powerSupplyChoiceOut struct {
	RequiredWattage int          `json:"requiredWattage"`
	Items           []productOut `json:"items"`
}

type basketItemOut struct {
	Product  productOut `json:"product"`
	Quantity int        `json:"quantity"`
}

type basketOut struct {
	Items []basketItemOut `json:"items"`
	Total int64           `json:"total"`
}

type orderOut struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	Items     []basketItemOut `json:"items"`
	Total     int64           `json:"total"`
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addBasketItemIn struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type powerSupplyIn struct {
	Parts []string `json:"parts"`
}

func toUserOut(user domain.User) userOut {
	return userOut{
		ID:               user.ID,
		Email:            user.Email,
		Role:             user.Role,
		AccountCreatedAt: user.AccountCreatedAt,
		PhotoURL:         user.PhotoURL,
	}
}

func toProductOut(p domain.Product) productOut {
	return productOut{
		ID:       p.ID,
		Category: string(p.Category),
		Name:     p.Name,
		Brand:    p.Brand,
		Price:    p.Price,
		InStock:  p.InStock,
		Specs:    p.Specs,
		ImageURL: p.ImageURL,
	}
}

func toProductsOut(products []domain.Product) []productOut {
	result := make([]productOut, 0, len(products))
	for _, p := range products {
		result = append(result, toProductOut(p))
	}
	return result
}

func toProductPageOut(page service.ProductPage) productPageOut {
	return productPageOut{
		Items:    toProductsOut(page.Items),
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	}
}

func toBasketItemsOut(items []domain.BasketItem) []basketItemOut {
	result := make([]basketItemOut, 0, len(items))
	for _, item := range items {
		result = append(result, basketItemOut{
			Product:  toProductOut(item.Product),
			Quantity: item.Quantity,
		})
	}
	return result
}

func toBasketOut(basket domain.Basket) basketOut {
	return basketOut{
		Items: toBasketItemsOut(basket.Items),
		Total: basket.Total(),
	}
}

func toOrderOut(order domain.Order) orderOut {
	return orderOut{
		ID:        order.ID,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
		Items:     toBasketItemsOut(order.Items),
		Total:     order.Total,
	}
}
