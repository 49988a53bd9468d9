package domain

import (
	"errors"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

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

func (c Category) Valid() bool {
	switch c {
	case CategoryCPU, CategoryGPU, CategoryRAM, CategoryStorage,
		CategoryPSU, CategoryMotherboard, CategoryCase, CategoryPC:
		return true
	default:
		return false
	}
}

type Product struct {
	ID       string
	Category Category
	Name     string
	Brand    string
	Price    int64
	InStock  int
	Specs    map[string]string
	ImageURL string

	// Socket is set for CPUs and motherboards.
	Socket string
	// PowerDraw is the peak consumption in watts, Wattage is the PSU output.
	PowerDraw int
	Wattage   int
}

type ProductRepository interface {
	Find(category Category) []Product
	FindOne(id string) (Product, error)
	Reserve(id string, quantity int) error
}

const (
	psuHeadroomPercent = 30
	psuBaseDrawWatts   = 50
	psuWattageStep     = 50
)

// RequiredWattage adds headroom to the summed draw and rounds up to a PSU size step.
func RequiredWattage(parts []Product) int {
	draw := psuBaseDrawWatts
	for _, p := range parts {
		draw += p.PowerDraw
	}

	draw += draw * psuHeadroomPercent / 100
	if rem := draw % psuWattageStep; rem != 0 {
		draw += psuWattageStep - rem
	}
	return draw
}

func CompatibleMotherboard(cpu, motherboard Product) bool {
	return cpu.Category == CategoryCPU &&
		motherboard.Category == CategoryMotherboard &&
		cpu.Socket != "" &&
		cpu.Socket == motherboard.Socket
}
