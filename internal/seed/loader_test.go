package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saharyasa/best-buy-2.0/internal/domain"
)

func TestLoad_DefaultCatalog(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	products := store.AllProducts()
	require.Len(t, products, 5)

	macbook := store.ProductByName("MacBook Air M2")
	require.NotNil(t, macbook)
	assert.Equal(t, 1450.0, macbook.Price())
	assert.Equal(t, 100, macbook.Quantity())
	require.NotNil(t, macbook.Promotion())
	assert.Equal(t, "Second Half price!", macbook.Promotion().Name())

	license := store.ProductByName("Windows License")
	require.NotNil(t, license)
	assert.Equal(t, domain.KindNonStocked, license.Kind())
	assert.True(t, license.IsActive())

	shipping := store.ProductByName("Shipping")
	require.NotNil(t, shipping)
	assert.Equal(t, domain.KindLimited, shipping.Kind())
	assert.Equal(t, 1, shipping.MaxPurchase())
}

func TestLoad_CatalogFile(t *testing.T) {
	catalog := `
products:
  - name: Google Pixel 7
    price: 500
    quantity: 25
  - name: Windows License
    kind: non_stocked
    price: 120
    promotion:
      type: percent_discount
      name: 30% off!
      percent: 30
  - name: Shipping
    kind: limited
    price: 10
    quantity: 5
    max_purchase: 1
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o600))

	store, err := Load(path)
	require.NoError(t, err)

	products := store.AllProducts()
	require.Len(t, products, 3)
	assert.Equal(t, "Google Pixel 7", products[0].Name())

	license := store.ProductByName("Windows License")
	require.NotNil(t, license)
	require.NotNil(t, license.Promotion())
	assert.Equal(t, "30% off!", license.Promotion().Name())

	shipping := store.ProductByName("Shipping")
	require.NotNil(t, shipping)
	assert.Equal(t, 1, shipping.MaxPurchase())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_EmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products: []\n"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuild_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		spec ProductSpec
	}{
		{"missing name", ProductSpec{Price: 10, Quantity: 1}},
		{"negative price", ProductSpec{Name: "Pixel", Price: -1, Quantity: 1}},
		{"limited without cap", ProductSpec{Name: "Shipping", Kind: "limited", Price: 10, Quantity: 1}},
		{"bad promotion type", ProductSpec{Name: "Pixel", Price: 10, Quantity: 1,
			Promotion: &PromotionSpec{Type: "bogo", Name: "BOGO"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build([]ProductSpec{tt.spec})
			assert.Error(t, err)
		})
	}
}

func TestBuildProduct_Kinds(t *testing.T) {
	standard, err := BuildProduct(ProductSpec{Name: "Pixel", Price: 500, Quantity: 25})
	require.NoError(t, err)
	assert.Equal(t, domain.KindStandard, standard.Kind())

	nonStocked, err := BuildProduct(ProductSpec{Name: "License", Kind: "non_stocked", Price: 120})
	require.NoError(t, err)
	assert.Equal(t, domain.KindNonStocked, nonStocked.Kind())

	limited, err := BuildProduct(ProductSpec{Name: "Shipping", Kind: "limited", Price: 10, Quantity: 5, MaxPurchase: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.KindLimited, limited.Kind())

	_, err = BuildProduct(ProductSpec{Name: "Pixel", Kind: "digital", Price: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
