package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saharyasa/best-buy-2.0/internal/domain"
	"github.com/Saharyasa/best-buy-2.0/internal/pkg/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	macbook, err := domain.NewProduct("MacBook Air M2", 1450, 100)
	require.NoError(t, err)
	earbuds, err := domain.NewProduct("Bose QuietComfort Earbuds", 250, 50)
	require.NoError(t, err)

	return NewService(domain.NewStore(macbook, earbuds), logger.New("test"))
}

func TestService_ProductByName(t *testing.T) {
	service := newTestService(t)

	product, err := service.ProductByName("MacBook Air M2")
	require.NoError(t, err)
	assert.Equal(t, "MacBook Air M2", product.Name())

	_, err = service.ProductByName("Google Pixel 7")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_AddProduct(t *testing.T) {
	service := newTestService(t)

	pixel, err := domain.NewProduct("Google Pixel 7", 500, 25)
	require.NoError(t, err)
	require.NoError(t, service.AddProduct(pixel))

	assert.Len(t, service.ActiveProducts(), 3)
}

func TestService_AddProduct_DuplicateName(t *testing.T) {
	service := newTestService(t)

	duplicate, err := domain.NewProduct("MacBook Air M2", 999, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, service.AddProduct(duplicate), domain.ErrAlreadyExists)
	assert.Len(t, service.AllProducts(), 2)
}

func TestService_RemoveProduct(t *testing.T) {
	service := newTestService(t)

	require.NoError(t, service.RemoveProduct("MacBook Air M2"))
	assert.Len(t, service.AllProducts(), 1)

	assert.ErrorIs(t, service.RemoveProduct("MacBook Air M2"), domain.ErrNotFound)
}

func TestService_TotalQuantity(t *testing.T) {
	service := newTestService(t)
	assert.Equal(t, 150, service.TotalQuantity())
}

func TestService_SetPromotion(t *testing.T) {
	service := newTestService(t)

	promo := domain.NewPercentDiscount("30% off!", 30)
	require.NoError(t, service.SetPromotion("MacBook Air M2", promo))

	product, err := service.ProductByName("MacBook Air M2")
	require.NoError(t, err)
	assert.Equal(t, promo, product.Promotion())

	require.NoError(t, service.SetPromotion("MacBook Air M2", nil))
	assert.Nil(t, product.Promotion())

	assert.ErrorIs(t, service.SetPromotion("Google Pixel 7", promo), domain.ErrNotFound)
}

func TestService_Order(t *testing.T) {
	service := newTestService(t)

	total, err := service.Order([]Line{
		{Name: "MacBook Air M2", Quantity: 2},
		{Name: "Bose QuietComfort Earbuds", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 3150.0, total)

	macbook, err := service.ProductByName("MacBook Air M2")
	require.NoError(t, err)
	assert.Equal(t, 98, macbook.Quantity())
}

func TestService_Order_UnknownName(t *testing.T) {
	service := newTestService(t)

	_, err := service.Order([]Line{
		{Name: "MacBook Air M2", Quantity: 2},
		{Name: "Google Pixel 7", Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	macbook, lookupErr := service.ProductByName("MacBook Air M2")
	require.NoError(t, lookupErr)
	assert.Equal(t, 100, macbook.Quantity())
}

func TestService_Order_OutOfStock(t *testing.T) {
	service := newTestService(t)

	_, err := service.Order([]Line{
		{Name: "Bose QuietComfort Earbuds", Quantity: 51},
	})
	assert.ErrorIs(t, err, domain.ErrOutOfStock)
}
