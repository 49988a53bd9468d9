package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hwstore-client/internal/devserver/app/service"
	"github.com/klwxsrx/hwstore-client/internal/devserver/domain"
	"github.com/klwxsrx/hwstore-client/internal/devserver/infra/memory"
	"github.com/klwxsrx/hwstore-client/pkg/log"
	"github.com/klwxsrx/hwstore-client/pkg/time/fake"
)

func newShop(products []domain.Product) service.Shop {
	return service.NewShop(
		memory.NewProductRepository(products),
		memory.NewBasketRepository(),
		memory.NewOrderRepository(),
		fake.NewClock(now),
		log.NewStub(),
	)
}

func TestShop_ListProducts(t *testing.T) {
	products := make([]domain.Product, 0, service.DefaultPageSize+5)
	for i := 0; i < service.DefaultPageSize+5; i++ {
		products = append(products, domain.Product{
			ID:       string(rune('a'+i/26)) + string(rune('a'+i%26)),
			Category: domain.CategoryRAM,
		})
	}
	products = append(products, domain.Product{ID: "zz", Category: domain.CategoryCPU})
	shop := newShop(products)
	ctx := context.Background()

	tests := []struct {
		name     string
		category domain.Category
		page     int
		items    int
		total    int
		err      error
	}{
		{name: "first_page", category: domain.CategoryRAM, page: 1, items: service.DefaultPageSize, total: service.DefaultPageSize + 5},
		{name: "second_page", category: domain.CategoryRAM, page: 2, items: 5, total: service.DefaultPageSize + 5},
		{name: "beyond_last_page", category: domain.CategoryRAM, page: 3, items: 0, total: service.DefaultPageSize + 5},
		{name: "zero_page_is_first", category: domain.CategoryCPU, page: 0, items: 1, total: 1},
		{name: "all_categories", page: 2, items: 6, total: service.DefaultPageSize + 6},
		{name: "unknown_category", category: "toaster", page: 1, err: domain.ErrInvalidCategory},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, err := shop.ListProducts(ctx, tc.category, tc.page)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, page.Items, tc.items)
			assert.Equal(t, tc.total, page.Total)
			assert.Equal(t, service.DefaultPageSize, page.PageSize)
		})
	}
}

func TestShop_PlaceOrderKeepsStockOnShortage(t *testing.T) {
	ctx := context.Background()
	shop := newShop([]domain.Product{
		{ID: "cpu-1", Category: domain.CategoryCPU, Price: 100, InStock: 1},
		{ID: "ram-1", Category: domain.CategoryRAM, Price: 10, InStock: 2},
	})

	_, err := shop.AddToBasket(ctx, "u1", "cpu-1", 1)
	require.NoError(t, err)
	_, err = shop.AddToBasket(ctx, "u1", "ram-1", 2)
	require.NoError(t, err)
	_, err = shop.AddToBasket(ctx, "u2", "ram-1", 1)
	require.NoError(t, err)

	order, err := shop.PlaceOrder(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(10), order.Total)
	assert.Equal(t, now, order.CreatedAt)

	_, err = shop.PlaceOrder(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	cpu, err := shop.GetProduct(ctx, "cpu-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cpu.InStock)
	assert.Len(t, shop.Basket(ctx, "u1").Items, 2)
	assert.Empty(t, shop.Orders(ctx, "u1"))
	assert.Len(t, shop.Orders(ctx, "u2"), 1)
}

func TestShop_Configurator(t *testing.T) {
	ctx := context.Background()
	shop := newShop(memory.Catalog())

	_, err := shop.CompatibleMotherboards(ctx, "gpu-1")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = shop.CompatibleMotherboards(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	boards, err := shop.CompatibleMotherboards(ctx, "cpu-2")
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "mb-2", boards[0].ID)

	choice, err := shop.SuitablePowerSupplies(ctx, []string{"cpu-1", "gpu-2", "mb-3", "ram-1"})
	require.NoError(t, err)
	assert.Equal(t, 700, choice.RequiredWattage)
	require.Len(t, choice.Items, 2)
	assert.Equal(t, "psu-2", choice.Items[0].ID)
	assert.Equal(t, "psu-3", choice.Items[1].ID)
}
