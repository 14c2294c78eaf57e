package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind enumerates the closed set of product behaviours
type Kind string

const (
	// KindStandard is a regular stocked product
	KindStandard Kind = "standard"

	// KindNonStocked is an unlimited-availability product, e.g. a license key
	KindNonStocked Kind = "non_stocked"

	// KindLimited is a stocked product with a per-order purchase ceiling
	KindLimited Kind = "limited"
)

// Product represents a catalog product. State is only mutated through Buy
// and SetPromotion; the quantity invariant (never negative, deactivate at
// zero) is enforced by the methods, so fields stay unexported.
type Product struct {
	kind        Kind
	name        string
	price       float64
	quantity    int
	active      bool
	maxPurchase int
	promotion   Promotion
}

// NewProduct creates a standard stocked product
func NewProduct(name string, price float64, quantity int) (*Product, error) {
	if err := validateProduct(name, price, quantity); err != nil {
		return nil, err
	}

	return &Product{
		kind:     KindStandard,
		name:     name,
		price:    price,
		quantity: quantity,
		active:   quantity > 0,
	}, nil
}

// NewNonStockedProduct creates a product with unlimited availability.
// Quantity is pinned at zero and carries no meaning for this kind.
func NewNonStockedProduct(name string, price float64) (*Product, error) {
	if err := validateProduct(name, price, 0); err != nil {
		return nil, err
	}

	return &Product{
		kind:   KindNonStocked,
		name:   name,
		price:  price,
		active: true,
	}, nil
}

// NewLimitedProduct creates a stocked product capped at maxPurchase units
// per single order
func NewLimitedProduct(name string, price float64, quantity, maxPurchase int) (*Product, error) {
	if err := validateProduct(name, price, quantity); err != nil {
		return nil, err
	}
	if maxPurchase <= 0 {
		return nil, fmt.Errorf("%w: max purchase must be greater than 0", ErrInvalidInput)
	}

	return &Product{
		kind:        KindLimited,
		name:        name,
		price:       price,
		quantity:    quantity,
		active:      quantity > 0,
		maxPurchase: maxPurchase,
	}, nil
}

func validateProduct(name string, price float64, quantity int) error {
	if name == "" {
		return fmt.Errorf("%w: product name cannot be empty", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	}
	return nil
}

// Kind returns the product kind
func (p *Product) Kind() Kind {
	return p.kind
}

// Name returns the product name, its identity within a store
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price
func (p *Product) Price() float64 {
	return p.price
}

// Quantity returns the units on hand. Always zero for non-stocked products.
func (p *Product) Quantity() int {
	return p.quantity
}

// MaxPurchase returns the per-order ceiling, or zero for unlimited kinds
func (p *Product) MaxPurchase() int {
	return p.maxPurchase
}

// IsActive reports whether the product is still purchasable. Non-stocked
// products are always active; other kinds deactivate when stock runs out.
func (p *Product) IsActive() bool {
	if p.kind == KindNonStocked {
		return true
	}
	return p.active
}

// SetPromotion attaches or replaces the product's promotion; nil clears it
func (p *Product) SetPromotion(promotion Promotion) {
	p.promotion = promotion
}

// Promotion returns the attached promotion, or nil if none is attached
func (p *Product) Promotion() Promotion {
	return p.promotion
}

// Buy purchases quantity units and returns the total price. Promotions,
// when attached, price the purchase for every product kind. Stock is
// decremented for stocked kinds; driving it to zero deactivates the
// product permanently.
func (p *Product) Buy(quantity int) (float64, error) {
	if err := p.CanBuy(quantity); err != nil {
		return 0, err
	}

	total := p.priceFor(quantity)

	if p.kind != KindNonStocked {
		p.quantity -= quantity
		if p.quantity == 0 {
			p.active = false
		}
	}

	return total, nil
}

// CanBuy reports whether a purchase of quantity units would succeed,
// without mutating any state
func (p *Product) CanBuy(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity to buy must be greater than 0", ErrInvalidInput)
	}
	if p.kind == KindLimited && quantity > p.maxPurchase {
		return fmt.Errorf("%w: quantity %d exceeds per-order limit of %d", ErrInvalidInput, quantity, p.maxPurchase)
	}
	if p.kind != KindNonStocked && quantity > p.quantity {
		return fmt.Errorf("%w: requested %d, have %d", ErrOutOfStock, quantity, p.quantity)
	}
	return nil
}

func (p *Product) priceFor(quantity int) float64 {
	if p.promotion != nil {
		return p.promotion.Apply(p.price, quantity)
	}
	return p.price * float64(quantity)
}

// Show renders the product in the fixed layout the storefront displays
func (p *Product) Show() string {
	var b strings.Builder

	b.WriteString(p.name)
	b.WriteString(", Price: ")
	b.WriteString(formatNumber(p.price))

	switch p.kind {
	case KindNonStocked:
		b.WriteString(" (Non-stocked product)")
	case KindLimited:
		b.WriteString(", Quantity: ")
		b.WriteString(strconv.Itoa(p.quantity))
		b.WriteString(", Max Purchase: ")
		b.WriteString(strconv.Itoa(p.maxPurchase))
	default:
		b.WriteString(", Quantity: ")
		b.WriteString(strconv.Itoa(p.quantity))
	}

	if p.promotion != nil {
		b.WriteString(" (Promotion: ")
		b.WriteString(p.promotion.Name())
		b.WriteString(")")
	}

	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
