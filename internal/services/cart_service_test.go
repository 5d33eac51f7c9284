package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
)

func TestCartAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("MergesQuantities", func(t *testing.T) {
		carts := new(MockCarts)
		products := new(MockProducts)
		svc := NewCartService(carts, products)

		products.On("Exists", ctx, "p1").Return(true, nil).Once()
		carts.On("AddItem", ctx, "u1", "p1", 3).
			Return(models.CartItem{UserID: "u1", ProductID: "p1", Quantity: 5, UpdatedAt: time.Now()}, nil).Once()

		it, err := svc.Add(ctx, "u1", "p1", 3)
		require.NoError(t, err)
		assert.Equal(t, 5, it.Quantity)
		carts.AssertExpectations(t)
	})

	t.Run("RejectsNonPositiveQuantity", func(t *testing.T) {
		carts := new(MockCarts)
		products := new(MockProducts)
		svc := NewCartService(carts, products)

		for _, q := range []int{0, -1} {
			_, err := svc.Add(ctx, "u1", "p1", q)
			assert.ErrorIs(t, err, ErrValidation)
		}
		products.AssertNotCalled(t, "Exists")
		carts.AssertNotCalled(t, "AddItem")
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		carts := new(MockCarts)
		products := new(MockProducts)
		svc := NewCartService(carts, products)

		products.On("Exists", ctx, "ghost").Return(false, nil).Once()

		_, err := svc.Add(ctx, "u1", "ghost", 1)
		assert.ErrorIs(t, err, ErrNotFound)
		carts.AssertNotCalled(t, "AddItem")
	})
}

func TestCartGet(t *testing.T) {
	ctx := context.Background()
	carts := new(MockCarts)
	svc := NewCartService(carts, new(MockProducts))

	carts.On("ListItems", ctx, "u1").Return([]models.CartItem{}, nil).Once()

	items, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("SetsExactQuantity", func(t *testing.T) {
		carts := new(MockCarts)
		svc := NewCartService(carts, new(MockProducts))

		carts.On("SetQuantity", ctx, "u1", "p1", 7).
			Return(models.CartItem{UserID: "u1", ProductID: "p1", Quantity: 7}, nil).Once()

		it, err := svc.Update(ctx, "u1", "p1", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, it.Quantity)
	})

	t.Run("ZeroRemovesLine", func(t *testing.T) {
		carts := new(MockCarts)
		svc := NewCartService(carts, new(MockProducts))

		carts.On("RemoveItem", ctx, "u1", "p1").Return(nil).Once()

		it, err := svc.Update(ctx, "u1", "p1", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, it.Quantity)
		carts.AssertNotCalled(t, "SetQuantity")
	})

	t.Run("MissingLine", func(t *testing.T) {
		carts := new(MockCarts)
		svc := NewCartService(carts, new(MockProducts))

		carts.On("SetQuantity", ctx, "u1", "p9", 2).
			Return(models.CartItem{}, repo.ErrNotFound).Once()

		_, err := svc.Update(ctx, "u1", "p9", 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	carts := new(MockCarts)
	svc := NewCartService(carts, new(MockProducts))

	carts.On("RemoveItem", ctx, "u1", "p1").Return(nil).Twice()

	assert.NoError(t, svc.Remove(ctx, "u1", "p1"))
	assert.NoError(t, svc.Remove(ctx, "u1", "p1"))
}
