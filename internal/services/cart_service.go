package services

import (
	"context"
	"errors"

	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
)

type CartService struct {
	carts    repo.Carts
	products repo.Products
}

func NewCartService(carts repo.Carts, products repo.Products) *CartService {
	return &CartService{carts: carts, products: products}
}

// Add merges quantity into the user's line for the product. The merge is a
// single atomic upsert at the store, so concurrent adds never drop an
// increment.
func (s *CartService) Add(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error) {
	if productID == "" {
		return models.CartItem{}, invalidf("productId required")
	}
	if quantity < 1 {
		return models.CartItem{}, invalidf("quantity must be a positive integer")
	}

	ok, err := s.products.Exists(ctx, productID)
	if err != nil {
		return models.CartItem{}, err
	}
	if !ok {
		return models.CartItem{}, ErrNotFound
	}

	return s.carts.AddItem(ctx, userID, productID, quantity)
}

// Get never fails for an empty or never-created cart.
func (s *CartService) Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	return s.carts.ListItems(ctx, userID)
}

// Update sets the line quantity to exactly the given value. Zero or below
// removes the line.
func (s *CartService) Update(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error) {
	if productID == "" {
		return models.CartItem{}, invalidf("productId required")
	}
	if quantity <= 0 {
		if err := s.carts.RemoveItem(ctx, userID, productID); err != nil {
			return models.CartItem{}, err
		}
		return models.CartItem{UserID: userID, ProductID: productID, Quantity: 0}, nil
	}

	it, err := s.carts.SetQuantity(ctx, userID, productID, quantity)
	if errors.Is(err, repo.ErrNotFound) {
		return models.CartItem{}, ErrNotFound
	}
	return it, err
}

// Remove is idempotent: removing an absent line is a successful no-op.
func (s *CartService) Remove(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return invalidf("productId required")
	}
	return s.carts.RemoveItem(ctx, userID, productID)
}
