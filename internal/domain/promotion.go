package domain

// Promotion prices a purchase of quantity units at the given unit price.
// Implementations are pure: they never mutate product or promotion state,
// and they assume quantity > 0 (Product.Buy validates before delegating).
type Promotion interface {
	// Name returns the display name of the promotion
	Name() string

	// Apply computes the total price for quantity units at unitPrice
	Apply(unitPrice float64, quantity int) float64
}

// PercentDiscount takes a flat percentage off the undiscounted total
type PercentDiscount struct {
	name    string
	percent float64
}

// NewPercentDiscount creates a percentage discount promotion
func NewPercentDiscount(name string, percent float64) *PercentDiscount {
	return &PercentDiscount{name: name, percent: percent}
}

func (p *PercentDiscount) Name() string {
	return p.name
}

func (p *PercentDiscount) Apply(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity) * (1 - p.percent/100)
}

// SecondHalfPrice charges every second unit at half price. Units are
// paired up; the odd unit left over in an incomplete pair costs full price.
type SecondHalfPrice struct {
	name string
}

// NewSecondHalfPrice creates a second-item-half-price promotion
func NewSecondHalfPrice(name string) *SecondHalfPrice {
	return &SecondHalfPrice{name: name}
}

func (p *SecondHalfPrice) Name() string {
	return p.name
}

func (p *SecondHalfPrice) Apply(unitPrice float64, quantity int) float64 {
	fullPriceUnits := (quantity + 1) / 2
	halfPriceUnits := quantity / 2
	return unitPrice*float64(fullPriceUnits) + unitPrice/2*float64(halfPriceUnits)
}

// ThirdOneFree gives one free unit for every three purchased
type ThirdOneFree struct {
	name string
}

// NewThirdOneFree creates a buy-two-get-one-free promotion
func NewThirdOneFree(name string) *ThirdOneFree {
	return &ThirdOneFree{name: name}
}

func (p *ThirdOneFree) Name() string {
	return p.name
}

func (p *ThirdOneFree) Apply(unitPrice float64, quantity int) float64 {
	payableUnits := quantity - quantity/3
	return unitPrice * float64(payableUnits)
}
