package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/klwxsrx/hwstore-client/internal/devserver/domain"
)

type productRepository struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

func NewProductRepository(products []domain.Product) domain.ProductRepository {
	repo := &productRepository{products: make(map[string]domain.Product, len(products))}
	for _, p := range products {
		repo.products[p.ID] = p
	}

	return repo
}

func (r *productRepository) Find(category domain.Category) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if category == "" || p.Category == category {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

func (r *productRepository) FindOne(id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return p, nil
}

func (r *productRepository) Reserve(id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	if p.InStock < quantity {
		return domain.ErrInsufficientStock
	}

	p.InStock -= quantity
	r.products[id] = p
	return nil
}
