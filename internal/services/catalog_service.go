package services

import (
	"context"
	"errors"

	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
)

type CatalogService struct {
	products repo.Products
}

func NewCatalogService(products repo.Products) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if err := p.Validate(); err != nil {
		return models.Product{}, invalidf("%s", err)
	}
	return s.products.Create(ctx, p)
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Product{}, ErrNotFound
	}
	return p, err
}

func (s *CatalogService) Update(ctx context.Context, p models.Product) (models.Product, error) {
	if err := p.Validate(); err != nil {
		return models.Product{}, invalidf("%s", err)
	}
	if _, err := s.GetByID(ctx, p.ID); err != nil {
		return models.Product{}, err
	}
	return s.products.Update(ctx, p)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	err := s.products.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
