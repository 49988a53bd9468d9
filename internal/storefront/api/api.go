package api

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
)

type UnexpectedStatusError struct {
	Code int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

type Category string

const (
	CategoryCPU         Category = "cpu"
	CategoryGPU         Category = "gpu"
	CategoryRAM         Category = "ram"
	CategoryStorage     Category = "storage"
	CategoryPSU         Category = "psu"
	CategoryMotherboard Category = "motherboard"
	CategoryCase        Category = "case"
	CategoryPC          Category = "pc"
)

var Categories = []Category{
	CategoryCPU,
	CategoryGPU,
	CategoryRAM,
	CategoryStorage,
	CategoryPSU,
	CategoryMotherboard,
	CategoryCase,
	CategoryPC,
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidRequest, s)
}

type (
	// Product prices are in minor currency units.
	Product struct {
		ID       string
		Category Category
		Name     string
		Brand    string
		Price    int64
		InStock  int
		Specs    map[string]string
		ImageURL string
	}

	ProductPage struct {
		Items    []Product
		Page     int
		PageSize int
		Total    int
	}

	PowerSupplyChoice struct {
		RequiredWattage int
		Items           []Product
	}

	BasketItem struct {
		Product  Product
		Quantity int
	}

	Basket struct {
		Items []BasketItem
		Total int64
	}

	Order struct {
		ID        string
		Status    string
		CreatedAt time.Time
		Items     []BasketItem
		Total     int64
	}
)

type (
	CatalogService interface {
		List(ctx context.Context, category Category, page int) (*ProductPage, error)
		Get(ctx context.Context, id string) (*Product, error)
	}

	ConfiguratorService interface {
		CompatibleMotherboards(ctx context.Context, cpuID string) ([]Product, error)
		SuitablePowerSupplies(ctx context.Context, partIDs []string) (*PowerSupplyChoice, error)
	}

	BasketService interface {
		Get(context.Context) (*Basket, error)
		AddItem(ctx context.Context, productID string, quantity int) (*Basket, error)
		RemoveItem(ctx context.Context, productID string) (*Basket, error)
	}

	OrderService interface {
		List(context.Context) ([]Order, error)
		Place(context.Context) (*Order, error)
	}
)
