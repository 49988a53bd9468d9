package domain

import (
	"errors"
	"time"
)

var ErrBasketIsEmpty = errors.New("basket is empty")

type BasketItem struct {
	Product  Product
	Quantity int
}

type Basket struct {
	UserID string
	Items  []BasketItem
}

func (b *Basket) Add(product Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	for i, item := range b.Items {
		if item.Product.ID != product.ID {
			continue
		}
		if item.Quantity+quantity > product.InStock {
			return ErrInsufficientStock
		}
		b.Items[i].Quantity += quantity
		return nil
	}

	if quantity > product.InStock {
		return ErrInsufficientStock
	}
	b.Items = append(b.Items, BasketItem{Product: product, Quantity: quantity})
	return nil
}

func (b *Basket) Remove(productID string) error {
	for i, item := range b.Items {
		if item.Product.ID == productID {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (b *Basket) Total() int64 {
	var total int64
	for _, item := range b.Items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

type OrderStatus string

const OrderStatusCreated OrderStatus = "created"

type Order struct {
	ID        string
	UserID    string
	Status    OrderStatus
	CreatedAt time.Time
	Items     []BasketItem
	Total     int64
}

type BasketRepository interface {
	Get(userID string) Basket
	Store(Basket)
}

type OrderRepository interface {
	NextID() string
	Store(Order)
	FindByUser(userID string) []Order
}
