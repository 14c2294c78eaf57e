package domain

import "fmt"

// OrderItem is one line of a shopping list: a product owned by the store
// and the number of units to purchase
type OrderItem struct {
	Product  *Product
	Quantity int
}

// Store owns an ordered collection of products. Duplicate names are not
// rejected by the collection itself; name lookups return the first match.
// The store assumes a single caller at a time; concurrent use needs
// external synchronization (the usecase layer holds a lock).
type Store struct {
	products []*Product
}

// NewStore creates a store stocked with the given products
func NewStore(products ...*Product) *Store {
	return &Store{products: products}
}

// AddProduct appends a product to the store's collection
func (s *Store) AddProduct(product *Product) {
	s.products = append(s.products, product)
}

// RemoveProduct removes a product from the store's collection.
// Returns ErrNotFound if the product is not owned by this store.
func (s *Store) RemoveProduct(product *Product) error {
	for i, p := range s.products {
		if p == product {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, product.Name())
}

// AllProducts returns every owned product in insertion order
func (s *Store) AllProducts() []*Product {
	all := make([]*Product, len(s.products))
	copy(all, s.products)
	return all
}

// ActiveProducts returns the active products in insertion order
func (s *Store) ActiveProducts() []*Product {
	active := make([]*Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// TotalQuantity returns the summed stock of all active products
func (s *Store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		if p.IsActive() {
			total += p.Quantity()
		}
	}
	return total
}

// ProductByName returns the first product with the exact given name, in
// insertion order, or nil if no product matches. Matching is case-sensitive.
func (s *Store) ProductByName(name string) *Product {
	for _, p := range s.products {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// Order fulfills a shopping list and returns the summed total price.
// Fulfillment is two-phase: every line is validated first (membership,
// quantity, per-order limits, and stock aggregated across duplicate lines),
// then all purchases commit. A failing order leaves no product mutated.
func (s *Store) Order(items []OrderItem) (float64, error) {
	requested := make(map[*Product]int, len(items))

	for _, item := range items {
		if !s.owns(item.Product) {
			return 0, fmt.Errorf("%w: %s is not sold in this store", ErrNotFound, item.Product.Name())
		}
		if err := item.Product.CanBuy(item.Quantity); err != nil {
			return 0, fmt.Errorf("%s: %w", item.Product.Name(), err)
		}
		requested[item.Product] += item.Quantity
	}

	// Lines validated one by one can still overdraw stock together
	for product, quantity := range requested {
		if product.Kind() != KindNonStocked && quantity > product.Quantity() {
			return 0, fmt.Errorf("%s: %w: requested %d, have %d",
				product.Name(), ErrOutOfStock, quantity, product.Quantity())
		}
	}

	total := 0.0
	for _, item := range items {
		price, err := item.Product.Buy(item.Quantity)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", item.Product.Name(), err)
		}
		total += price
	}

	return total, nil
}

func (s *Store) owns(product *Product) bool {
	for _, p := range s.products {
		if p == product {
			return true
		}
	}
	return false
}
