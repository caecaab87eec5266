package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golfa/internal/domain"
)

func TestFilter_AllAndEmptyQueryIsIdentity(t *testing.T) {
	products := domain.SeedProducts()
	got := Filter(products, domain.CategoryAll, "")
	assert.Equal(t, products, got)
}

func TestFilter_CategoryAndQueryCombineWithAnd(t *testing.T) {
	products := domain.SeedProducts()

	// exactly one fabric product mentions Bazin in the 9-item seed
	got := Filter(products, domain.CategoryFabric, "bazin")
	require.Len(t, got, 1)
	assert.Equal(t, "Tissu Bazin Riche Premium", got[0].Name)

	// same query without the category constraint still finds it
	got = Filter(products, domain.CategoryAll, "BAZIN")
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	// category alone
	shirts := Filter(products, domain.CategoryShirt, "")
	require.Len(t, shirts, 1)
	assert.Equal(t, "Tissu Oxford Bleu Marine", shirts[0].Name)

	// query matches descriptions too
	wool := Filter(products, domain.CategoryAll, "laine")
	require.Len(t, wool, 1)
	assert.Equal(t, domain.CategorySuit, wool[0].Category)

	// both predicates must hold
	assert.Empty(t, Filter(products, domain.CategoryShirt, "bazin"))
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	products := domain.SeedProducts()
	fabrics := Filter(products, domain.CategoryFabric, "")
	var prev int64
	for _, p := range fabrics {
		assert.Greater(t, p.ID, prev)
		prev = p.ID
	}
}

func TestNewArrivals(t *testing.T) {
	products := domain.SeedProducts()
	arrivals := NewArrivals(products)
	require.NotEmpty(t, arrivals)
	for _, p := range arrivals {
		assert.True(t, p.IsNew)
	}
	// relative order of the input is kept
	assert.Equal(t, int64(1), arrivals[0].ID)
	assert.Equal(t, int64(2), arrivals[1].ID)
}
