package memory

import (
	"slices"
	"strconv"
	"sync"

	"github.com/klwxsrx/hwstore-client/internal/devserver/domain"
)

type basketRepository struct {
	mu      sync.RWMutex
	baskets map[string]domain.Basket
}

func NewBasketRepository() domain.BasketRepository {
	return &basketRepository{baskets: make(map[string]domain.Basket)}
}

func (r *basketRepository) Get(userID string) domain.Basket {
	r.mu.RLock()
	defer r.mu.RUnlock()

	basket, ok := r.baskets[userID]
	if !ok {
		return domain.Basket{UserID: userID}
	}

	basket.Items = slices.Clone(basket.Items)
	return basket
}

func (r *basketRepository) Store(basket domain.Basket) {
	r.mu.Lock()
	defer r.mu.Unlock()

	basket.Items = slices.Clone(basket.Items)
	r.baskets[basket.UserID] = basket
}

type orderRepository struct {
	mu     sync.RWMutex
	lastID int
	orders []domain.Order
}

func NewOrderRepository() domain.OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) NextID() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	return "o" + strconv.Itoa(r.lastID)
}

func (r *orderRepository) Store(order domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
}

func (r *orderRepository) FindByUser(userID string) []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	return result
}
