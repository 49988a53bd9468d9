package memory

import (
	"github.com/klwxsrx/hwstore-client/internal/devserver/domain"
)

// Catalog is the product set the dev server starts with.
func Catalog() []domain.Product {
	return []domain.Product{
		{
			ID: "cpu-1", Category: domain.CategoryCPU, Name: "Ryzen 7 7700X", Brand: "AMD",
			Price: 3299000, InStock: 12, Socket: "AM5", PowerDraw: 105,
			Specs: map[string]string{"cores": "8", "socket": "AM5"},
		},
		{
			ID: "cpu-2", Category: domain.CategoryCPU, Name: "Core i5-13600K", Brand: "Intel",
			Price: 3099000, InStock: 7, Socket: "LGA1700", PowerDraw: 125,
			Specs: map[string]string{"cores": "14", "socket": "LGA1700"},
		},
		{
			ID: "gpu-1", Category: domain.CategoryGPU, Name: "GeForce RTX 4070", Brand: "NVIDIA",
			Price: 6499000, InStock: 4, PowerDraw: 200,
			Specs: map[string]string{"memory": "12GB"},
		},
		{
			ID: "gpu-2", Category: domain.CategoryGPU, Name: "Radeon RX 7900 XT", Brand: "AMD",
			Price: 8299000, InStock: 2, PowerDraw: 315,
			Specs: map[string]string{"memory": "20GB"},
		},
		{
			ID: "mb-1", Category: domain.CategoryMotherboard, Name: "B650 Tomahawk", Brand: "MSI",
			Price: 2199000, InStock: 5, Socket: "AM5", PowerDraw: 30,
			Specs: map[string]string{"socket": "AM5", "formFactor": "ATX"},
		},
		{
			ID: "mb-2", Category: domain.CategoryMotherboard, Name: "Z790 Aorus Elite", Brand: "Gigabyte",
			Price: 2599000, InStock: 3, Socket: "LGA1700", PowerDraw: 35,
			Specs: map[string]string{"socket": "LGA1700", "formFactor": "ATX"},
		},
		{
			ID: "mb-3", Category: domain.CategoryMotherboard, Name: "X670E Hero", Brand: "ASUS",
			Price: 4999000, InStock: 1, Socket: "AM5", PowerDraw: 40,
			Specs: map[string]string{"socket": "AM5", "formFactor": "E-ATX"},
		},
		{
			ID: "ram-1", Category: domain.CategoryRAM, Name: "Vengeance 32GB DDR5", Brand: "Corsair",
			Price: 1199000, InStock: 20, PowerDraw: 10,
			Specs: map[string]string{"capacity": "32GB", "type": "DDR5"},
		},
		{
			ID: "ssd-1", Category: domain.CategoryStorage, Name: "990 Pro 2TB", Brand: "Samsung",
			Price: 1699000, InStock: 15, PowerDraw: 8,
			Specs: map[string]string{"capacity": "2TB", "interface": "NVMe"},
		},
		{
			ID: "psu-1", Category: domain.CategoryPSU, Name: "RM550x", Brand: "Corsair",
			Price: 899000, InStock: 6, Wattage: 550,
			Specs: map[string]string{"wattage": "550"},
		},
		{
			ID: "psu-2", Category: domain.CategoryPSU, Name: "Focus GX-750", Brand: "Seasonic",
			Price: 1199000, InStock: 9, Wattage: 750,
			Specs: map[string]string{"wattage": "750"},
		},
		{
			ID: "psu-3", Category: domain.CategoryPSU, Name: "Dark Power 1000", Brand: "be quiet!",
			Price: 2499000, InStock: 2, Wattage: 1000,
			Specs: map[string]string{"wattage": "1000"},
		},
		{
			ID: "case-1", Category: domain.CategoryCase, Name: "North", Brand: "Fractal Design",
			Price: 1399000, InStock: 8,
			Specs: map[string]string{"formFactor": "ATX"},
		},
		{
			ID: "pc-1", Category: domain.CategoryPC, Name: "Gaming Starter", Brand: "HWStore",
			Price: 11999000, InStock: 3, PowerDraw: 450,
			Specs: map[string]string{"cpu": "Ryzen 7 7700X", "gpu": "GeForce RTX 4070"},
		},
	}
}
