package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/hwstore-client/internal/devserver/domain"
)

func TestRequiredWattage(t *testing.T) {
	tests := []struct {
		name  string
		parts []domain.Product
		watts int
	}{
		{name: "no_parts", parts: nil, watts: 100},
		{
			name: "cpu_and_gpu",
			parts: []domain.Product{
				{Category: domain.CategoryCPU, PowerDraw: 120},
				{Category: domain.CategoryGPU, PowerDraw: 320},
			},
			watts: 650,
		},
		{
			name:  "exact_step",
			parts: []domain.Product{{PowerDraw: 450}},
			watts: 650,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.watts, domain.RequiredWattage(tc.parts))
		})
	}
}

func TestBasket(t *testing.T) {
	cpu := domain.Product{ID: "cpu-1", Price: 30000, InStock: 2}
	gpu := domain.Product{ID: "gpu-1", Price: 60000, InStock: 1}

	var basket domain.Basket
	assert.NoError(t, basket.Add(cpu, 1))
	assert.NoError(t, basket.Add(cpu, 1))
	assert.ErrorIs(t, basket.Add(cpu, 1), domain.ErrInsufficientStock)
	assert.ErrorIs(t, basket.Add(gpu, 0), domain.ErrInvalidQuantity)
	assert.NoError(t, basket.Add(gpu, 1))
	assert.Equal(t, int64(120000), basket.Total())

	assert.NoError(t, basket.Remove("cpu-1"))
	assert.ErrorIs(t, basket.Remove("cpu-1"), domain.ErrProductNotFound)
	assert.Equal(t, int64(60000), basket.Total())
}

func TestCompatibleMotherboard(t *testing.T) {
	cpu := domain.Product{Category: domain.CategoryCPU, Socket: "AM5"}

	assert.True(t, domain.CompatibleMotherboard(cpu, domain.Product{Category: domain.CategoryMotherboard, Socket: "AM5"}))
	assert.False(t, domain.CompatibleMotherboard(cpu, domain.Product{Category: domain.CategoryMotherboard, Socket: "LGA1700"}))
	assert.False(t, domain.CompatibleMotherboard(cpu, domain.Product{Category: domain.CategoryGPU, Socket: "AM5"}))
}
