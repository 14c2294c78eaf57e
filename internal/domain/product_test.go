package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name     string
		prodName string
		price    float64
		quantity int
	}{
		{"empty name", "", 100, 10},
		{"negative price", "MacBook Air M2", -1, 10},
		{"negative quantity", "MacBook Air M2", 100, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.prodName, tt.price, tt.quantity)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, product)
		})
	}
}

func TestNewProduct_Defaults(t *testing.T) {
	product, err := NewProduct("MacBook Air M2", 1450, 100)
	require.NoError(t, err)

	assert.Equal(t, KindStandard, product.Kind())
	assert.Equal(t, "MacBook Air M2", product.Name())
	assert.Equal(t, 1450.0, product.Price())
	assert.Equal(t, 100, product.Quantity())
	assert.True(t, product.IsActive())
	assert.Nil(t, product.Promotion())
}

func TestNewProduct_ZeroQuantityStartsInactive(t *testing.T) {
	product, err := NewProduct("Google Pixel 7", 500, 0)
	require.NoError(t, err)

	assert.False(t, product.IsActive())
}

func TestProduct_Buy(t *testing.T) {
	product, err := NewProduct("Google Pixel 7", 500, 25)
	require.NoError(t, err)

	total, err := product.Buy(5)
	require.NoError(t, err)

	assert.Equal(t, 2500.0, total)
	assert.Equal(t, 20, product.Quantity())
	assert.True(t, product.IsActive())
}

func TestProduct_Buy_InvalidQuantity(t *testing.T) {
	product, err := NewProduct("Google Pixel 7", 500, 25)
	require.NoError(t, err)

	for _, quantity := range []int{0, -1} {
		total, err := product.Buy(quantity)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, total)
	}
	assert.Equal(t, 25, product.Quantity())
}

func TestProduct_Buy_OutOfStock(t *testing.T) {
	product, err := NewProduct("Google Pixel 7", 500, 3)
	require.NoError(t, err)

	total, err := product.Buy(4)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Zero(t, total)
	assert.Equal(t, 3, product.Quantity())
}

func TestProduct_Buy_DeactivatesAtZero(t *testing.T) {
	product, err := NewProduct("Google Pixel 7", 500, 2)
	require.NoError(t, err)

	_, err = product.Buy(2)
	require.NoError(t, err)

	assert.Equal(t, 0, product.Quantity())
	assert.False(t, product.IsActive())

	// Nothing flips the product back to active
	_, err = product.Buy(1)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.False(t, product.IsActive())
}

func TestProduct_Buy_WithPromotion(t *testing.T) {
	product, err := NewProduct("Bose QuietComfort Earbuds", 100, 50)
	require.NoError(t, err)

	product.SetPromotion(NewSecondHalfPrice("Second Half price!"))

	total, err := product.Buy(2)
	require.NoError(t, err)

	assert.InDelta(t, 150.0, total, 1e-9)
	assert.Equal(t, 48, product.Quantity())
}

func TestProduct_SetPromotion_NilClears(t *testing.T) {
	product, err := NewProduct("Bose QuietComfort Earbuds", 100, 50)
	require.NoError(t, err)

	promo := NewThirdOneFree("Third One Free!")
	product.SetPromotion(promo)
	assert.Equal(t, promo, product.Promotion())

	product.SetPromotion(nil)
	assert.Nil(t, product.Promotion())

	total, err := product.Buy(3)
	require.NoError(t, err)
	assert.Equal(t, 300.0, total)
}

func TestNonStockedProduct(t *testing.T) {
	product, err := NewNonStockedProduct("Windows License", 150)
	require.NoError(t, err)

	assert.Equal(t, KindNonStocked, product.Kind())
	assert.Equal(t, 0, product.Quantity())
	assert.True(t, product.IsActive())

	// Arbitrarily large purchases succeed and never touch stock
	total, err := product.Buy(10000)
	require.NoError(t, err)
	assert.Equal(t, 1500000.0, total)
	assert.Equal(t, 0, product.Quantity())
	assert.True(t, product.IsActive())

	_, err = product.Buy(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNonStockedProduct_PromotionApplies(t *testing.T) {
	product, err := NewNonStockedProduct("Windows License", 120)
	require.NoError(t, err)

	product.SetPromotion(NewPercentDiscount("30% off!", 30))

	total, err := product.Buy(1)
	require.NoError(t, err)
	assert.InDelta(t, 84.0, total, 1e-9)
}

func TestLimitedProduct(t *testing.T) {
	product, err := NewLimitedProduct("Shipping Fee", 5, 10, 2)
	require.NoError(t, err)

	assert.Equal(t, KindLimited, product.Kind())
	assert.Equal(t, 10, product.Quantity())
	assert.Equal(t, 2, product.MaxPurchase())

	total, err := product.Buy(2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, total)
	assert.Equal(t, 8, product.Quantity())

	// Exceeds the per-order limit regardless of available stock
	_, err = product.Buy(3)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 8, product.Quantity())
}

func TestNewLimitedProduct_Validation(t *testing.T) {
	_, err := NewLimitedProduct("Shipping", 10, 5, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewLimitedProduct("", 10, 5, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProduct_Show(t *testing.T) {
	standard, err := NewProduct("MacBook Air M2", 1450, 100)
	require.NoError(t, err)
	assert.Equal(t, "MacBook Air M2, Price: 1450, Quantity: 100", standard.Show())

	standard.SetPromotion(NewSecondHalfPrice("Second Half price!"))
	assert.Equal(t,
		"MacBook Air M2, Price: 1450, Quantity: 100 (Promotion: Second Half price!)",
		standard.Show())

	nonStocked, err := NewNonStockedProduct("Microsoft Windows License", 150)
	require.NoError(t, err)
	assert.Equal(t, "Microsoft Windows License, Price: 150 (Non-stocked product)", nonStocked.Show())

	limited, err := NewLimitedProduct("Shipping Fee", 5, 8, 2)
	require.NoError(t, err)
	assert.Equal(t, "Shipping Fee, Price: 5, Quantity: 8, Max Purchase: 2", limited.Show())
}

func TestProduct_Show_FractionalPrice(t *testing.T) {
	product, err := NewProduct("Bose QuietComfort Earbuds", 249.99, 50)
	require.NoError(t, err)

	assert.Equal(t, "Bose QuietComfort Earbuds, Price: 249.99, Quantity: 50", product.Show())
}
