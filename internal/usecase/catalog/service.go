package catalog

import (
	"fmt"
	"sync"

	"github.com/Saharyasa/best-buy-2.0/internal/domain"
	"github.com/Saharyasa/best-buy-2.0/internal/pkg/logger"
)

// Service handles catalog business logic. The store itself assumes a single
// caller, so the service serializes access for the concurrent HTTP context.
type Service struct {
	store  *domain.Store
	logger *logger.Logger
	mu     sync.RWMutex
}

// NewService creates a new catalog service
func NewService(store *domain.Store, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: log,
	}
}

// ActiveProducts returns the purchasable products in catalog order
func (s *Service) ActiveProducts() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.ActiveProducts()
}

// AllProducts returns every product, inactive ones included
func (s *Service) AllProducts() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.AllProducts()
}

// TotalQuantity returns the summed stock of the active catalog
func (s *Service) TotalQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.TotalQuantity()
}

// ProductByName returns the first product with the given name
func (s *Service) ProductByName(name string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product := s.store.ProductByName(name)
	if product == nil {
		s.logger.Debugf("Product not found: %s", name)
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}

	return product, nil
}

// AddProduct stocks a new product. Names stay unique so that lookups and
// orders by name are unambiguous.
func (s *Service) AddProduct(product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.store.ProductByName(product.Name()); existing != nil {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, product.Name())
	}

	s.store.AddProduct(product)

	s.logger.WithFields(map[string]interface{}{
		"name": product.Name(),
		"kind": product.Kind(),
	}).Info("Product added to catalog")

	return nil
}

// RemoveProduct removes the named product from the catalog
func (s *Service) RemoveProduct(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := s.store.ProductByName(name)
	if product == nil {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}

	if err := s.store.RemoveProduct(product); err != nil {
		s.logger.Error("Failed to remove product", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"name": name,
	}).Info("Product removed from catalog")

	return nil
}

// Line is one requested order line, addressed by product name
type Line struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Order resolves the requested lines against the catalog and fulfills them
// as one purchase. Resolution and fulfillment happen under a single lock so
// no other caller can change stock in between.
func (s *Service) Order(lines []Line) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		product := s.store.ProductByName(line.Name)
		if product == nil {
			return 0, fmt.Errorf("%w: %s", domain.ErrNotFound, line.Name)
		}
		items = append(items, domain.OrderItem{Product: product, Quantity: line.Quantity})
	}

	total, err := s.store.Order(items)
	if err != nil {
		s.logger.Debugf("Order rejected: %v", err)
		return 0, err
	}

	s.logger.WithFields(map[string]interface{}{
		"lines": len(lines),
		"total": total,
	}).Info("Order fulfilled")

	return total, nil
}

// SetPromotion attaches a promotion to the named product; nil clears it
func (s *Service) SetPromotion(name string, promotion domain.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := s.store.ProductByName(name)
	if product == nil {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}

	product.SetPromotion(promotion)

	fields := map[string]interface{}{"name": name}
	if promotion != nil {
		fields["promotion"] = promotion.Name()
	}
	s.logger.WithFields(fields).Info("Product promotion updated")

	return nil
}
