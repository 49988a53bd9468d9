package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/klwxsrx/hwstore-client/internal/devserver/domain"
	"github.com/klwxsrx/hwstore-client/pkg/log"
	pkgtime "github.com/klwxsrx/hwstore-client/pkg/time"
)

const DefaultPageSize = 20

type (
	Shop interface {
		ListProducts(ctx context.Context, category domain.Category, page int) (ProductPage, error)
		GetProduct(ctx context.Context, id string) (domain.Product, error)
		CompatibleMotherboards(ctx context.Context, cpuID string) ([]domain.Product, error)
		SuitablePowerSupplies(ctx context.Context, partIDs []string) (PowerSupplyChoice, error)
		Basket(ctx context.Context, userID string) domain.Basket
		AddToBasket(ctx context.Context, userID, productID string, quantity int) (domain.Basket, error)
		RemoveFromBasket(ctx context.Context, userID, productID string) (domain.Basket, error)
		Orders(ctx context.Context, userID string) []domain.Order
		PlaceOrder(ctx context.Context, userID string) (domain.Order, error)
	}

	ProductPage struct {
		Items    []domain.Product
		Page     int
		PageSize int
		Total    int
	}

	PowerSupplyChoice struct {
		RequiredWattage int
		Items           []domain.Product
	}

	shopService struct {
		products domain.ProductRepository
		baskets  domain.BasketRepository
		orders   domain.OrderRepository
		clock    pkgtime.Clock
		logger   log.Logger

		checkout sync.Mutex
	}
)

func NewShop(
	products domain.ProductRepository,
	baskets domain.BasketRepository,
	orders domain.OrderRepository,
	clock pkgtime.Clock,
	logger log.Logger,
) Shop {
	return &shopService{
		products: products,
		baskets:  baskets,
		orders:   orders,
		clock:    clock,
		logger:   logger,
	}
}

func (s *shopService) ListProducts(_ context.Context, category domain.Category, page int) (ProductPage, error) {
	if category != "" && !category.Valid() {
		return ProductPage{}, fmt.Errorf("%w: %s", domain.ErrInvalidCategory, category)
	}
	if page < 1 {
		page = 1
	}

	products := s.products.Find(category)
	from := min((page-1)*DefaultPageSize, len(products))
	to := min(from+DefaultPageSize, len(products))

	return ProductPage{
		Items:    products[from:to],
		Page:     page,
		PageSize: DefaultPageSize,
		Total:    len(products),
	}, nil
}

func (s *shopService) GetProduct(_ context.Context, id string) (domain.Product, error) {
	return s.products.FindOne(id)
}

func (s *shopService) CompatibleMotherboards(_ context.Context, cpuID string) ([]domain.Product, error) {
	cpu, err := s.products.FindOne(cpuID)
	if err != nil {
		return nil, err
	}
	if cpu.Category != domain.CategoryCPU {
		return nil, fmt.Errorf("%w: product %s is not a cpu", domain.ErrInvalidCategory, cpuID)
	}

	result := make([]domain.Product, 0)
	for _, motherboard := range s.products.Find(domain.CategoryMotherboard) {
		if domain.CompatibleMotherboard(cpu, motherboard) {
			result = append(result, motherboard)
		}
	}
	return result, nil
}

func (s *shopService) SuitablePowerSupplies(_ context.Context, partIDs []string) (PowerSupplyChoice, error) {
	parts := make([]domain.Product, 0, len(partIDs))
	for _, id := range partIDs {
		part, err := s.products.FindOne(id)
		if err != nil {
			return PowerSupplyChoice{}, err
		}
		parts = append(parts, part)
	}

	required := domain.RequiredWattage(parts)
	items := make([]domain.Product, 0)
	for _, psu := range s.products.Find(domain.CategoryPSU) {
		if psu.Wattage >= required {
			items = append(items, psu)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Wattage < items[j].Wattage
	})

	return PowerSupplyChoice{
		RequiredWattage: required,
		Items:           items,
	}, nil
}

func (s *shopService) Basket(_ context.Context, userID string) domain.Basket {
	return s.baskets.Get(userID)
}

func (s *shopService) AddToBasket(_ context.Context, userID, productID string, quantity int) (domain.Basket, error) {
	product, err := s.products.FindOne(productID)
	if err != nil {
		return domain.Basket{}, err
	}

	s.checkout.Lock()
	defer s.checkout.Unlock()

	basket := s.baskets.Get(userID)
	err = basket.Add(product, quantity)
	if err != nil {
		return domain.Basket{}, err
	}

	s.baskets.Store(basket)
	return basket, nil
}

func (s *shopService) RemoveFromBasket(_ context.Context, userID, productID string) (domain.Basket, error) {
	s.checkout.Lock()
	defer s.checkout.Unlock()

	basket := s.baskets.Get(userID)
	err := basket.Remove(productID)
	if err != nil {
		return domain.Basket{}, err
	}

	s.baskets.Store(basket)
	return basket, nil
}

func (s *shopService) Orders(_ context.Context, userID string) []domain.Order {
	return s.orders.FindByUser(userID)
}

func (s *shopService) PlaceOrder(ctx context.Context, userID string) (domain.Order, error) {
	s.checkout.Lock()
	defer s.checkout.Unlock()

	basket := s.baskets.Get(userID)
	if len(basket.Items) == 0 {
		return domain.Order{}, domain.ErrBasketIsEmpty
	}

	for _, item := range basket.Items {
		product, err := s.products.FindOne(item.Product.ID)
		if err != nil {
			return domain.Order{}, err
		}
		if product.InStock < item.Quantity {
			return domain.Order{}, fmt.Errorf("product %s: %w", product.ID, domain.ErrInsufficientStock)
		}
	}
	for _, item := range basket.Items {
		err := s.products.Reserve(item.Product.ID, item.Quantity)
		if err != nil {
			return domain.Order{}, fmt.Errorf("reserve product %s: %w", item.Product.ID, err)
		}
	}

	order := domain.Order{
		ID:        s.orders.NextID(),
		UserID:    userID,
		Status:    domain.OrderStatusCreated,
		CreatedAt: s.clock.Now(),
		Items:     basket.Items,
		Total:     basket.Total(),
	}
	s.orders.Store(order)
	s.baskets.Store(domain.Basket{UserID: userID})

	s.logger.With(log.Fields{
		"userID":  userID,
		"orderID": order.ID,
	}).Info(ctx, "order placed")
	return order, nil
}
