// Package seed builds the starting store inventory, either from a YAML
// catalog file or from the built-in default catalog.
package seed

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/Saharyasa/best-buy-2.0/internal/domain"
)

// ProductSpec describes one product entry in the catalog file
type ProductSpec struct {
	Name        string         `mapstructure:"name" validate:"required"`
	Kind        string         `mapstructure:"kind" validate:"omitempty,oneof=standard non_stocked limited"`
	Price       float64        `mapstructure:"price" validate:"gte=0"`
	Quantity    int            `mapstructure:"quantity" validate:"gte=0"`
	MaxPurchase int            `mapstructure:"max_purchase" validate:"gte=0"`
	Promotion   *PromotionSpec `mapstructure:"promotion"`
}

// PromotionSpec describes an optional promotion attached to a product entry
type PromotionSpec struct {
	Type    string  `mapstructure:"type" validate:"required,oneof=percent_discount second_half_price third_one_free"`
	Name    string  `mapstructure:"name" validate:"required"`
	Percent float64 `mapstructure:"percent" validate:"gte=0,lte=100"`
}

// Load builds a store from the catalog file at path. An empty path selects
// the default inventory.
func Load(path string) (*domain.Store, error) {
	if path == "" {
		return defaultStore()
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var specs []ProductSpec
	if err := v.UnmarshalKey("products", &specs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: catalog file %s defines no products", domain.ErrInvalidInput, path)
	}

	return Build(specs)
}

// Build constructs a store from product specs, preserving their order
func Build(specs []ProductSpec) (*domain.Store, error) {
	validate := validator.New()
	store := domain.NewStore()

	for i, spec := range specs {
		if err := validate.Struct(spec); err != nil {
			return nil, fmt.Errorf("%w: catalog entry %d: %v", domain.ErrInvalidInput, i, err)
		}

		product, err := BuildProduct(spec)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): %w", i, spec.Name, err)
		}

		store.AddProduct(product)
	}

	return store, nil
}

// BuildProduct constructs one product from its spec, promotion included
func BuildProduct(spec ProductSpec) (*domain.Product, error) {
	var (
		product *domain.Product
		err     error
	)

	switch domain.Kind(spec.Kind) {
	case domain.KindNonStocked:
		product, err = domain.NewNonStockedProduct(spec.Name, spec.Price)
	case domain.KindLimited:
		product, err = domain.NewLimitedProduct(spec.Name, spec.Price, spec.Quantity, spec.MaxPurchase)
	case domain.KindStandard, "":
		product, err = domain.NewProduct(spec.Name, spec.Price, spec.Quantity)
	default:
		return nil, fmt.Errorf("%w: unknown product kind %q", domain.ErrInvalidInput, spec.Kind)
	}
	if err != nil {
		return nil, err
	}

	if spec.Promotion != nil {
		promotion, err := BuildPromotion(*spec.Promotion)
		if err != nil {
			return nil, err
		}
		product.SetPromotion(promotion)
	}

	return product, nil
}

// BuildPromotion constructs a promotion from its spec
func BuildPromotion(spec PromotionSpec) (domain.Promotion, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: promotion name cannot be empty", domain.ErrInvalidInput)
	}

	switch spec.Type {
	case "percent_discount":
		return domain.NewPercentDiscount(spec.Name, spec.Percent), nil
	case "second_half_price":
		return domain.NewSecondHalfPrice(spec.Name), nil
	case "third_one_free":
		return domain.NewThirdOneFree(spec.Name), nil
	default:
		return nil, fmt.Errorf("%w: unknown promotion type %q", domain.ErrInvalidInput, spec.Type)
	}
}

// defaultStore mirrors the stock the storefront opened with before catalog
// files existed
func defaultStore() (*domain.Store, error) {
	return Build([]ProductSpec{
		{Name: "MacBook Air M2", Price: 1450, Quantity: 100,
			Promotion: &PromotionSpec{Type: "second_half_price", Name: "Second Half price!"}},
		{Name: "Bose QuietComfort Earbuds", Price: 250, Quantity: 50,
			Promotion: &PromotionSpec{Type: "third_one_free", Name: "Third One Free!"}},
		{Name: "Google Pixel 7", Price: 500, Quantity: 25},
		{Name: "Windows License", Kind: "non_stocked", Price: 120,
			Promotion: &PromotionSpec{Type: "percent_discount", Name: "30% off!", Percent: 30}},
		{Name: "Shipping", Kind: "limited", Price: 10, Quantity: 1, MaxPurchase: 1},
	})
}
