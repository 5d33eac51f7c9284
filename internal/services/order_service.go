package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/melisaydin/shop-backend/internal/metrics"
	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
	"github.com/melisaydin/shop-backend/internal/worker"
)

type OrderService struct {
	orders   repo.Orders
	products repo.Products
	audit    repo.AuditLogs
	wp       *worker.Pool
}

func NewOrderService(orders repo.Orders, products repo.Products, audit repo.AuditLogs, wp *worker.Pool) *OrderService {
	return &OrderService{orders: orders, products: products, audit: audit, wp: wp}
}

// Create accepts the caller-supplied item list and total as-is; items are
// validated for shape and product existence, the price is not recomputed
// from the catalog.
func (s *OrderService) Create(ctx context.Context, items []models.OrderItem, totalPrice float64, status models.OrderStatus) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, invalidf("products must be a non-empty list")
	}
	for _, it := range items {
		if it.ProductID == "" {
			return models.Order{}, invalidf("productId required for every item")
		}
		if it.Quantity < 1 {
			return models.Order{}, invalidf("quantity must be >= 1")
		}
	}
	if totalPrice <= 0 {
		return models.Order{}, invalidf("totalPrice must be > 0")
	}
	for _, it := range items {
		ok, err := s.products.Exists(ctx, it.ProductID)
		if err != nil {
			return models.Order{}, err
		}
		if !ok {
			return models.Order{}, fmt.Errorf("%w: product %s", ErrNotFound, it.ProductID)
		}
	}

	if status == "" {
		status = models.OrderPending
	}
	o, err := s.orders.Create(ctx, models.Order{Items: items, TotalPrice: totalPrice, Status: status})
	if err != nil {
		return models.Order{}, err
	}
	metrics.OrdersTotal.Inc()
	s.auditAsync(o.ID, "created", string(o.Status))
	return o, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) GetByID(ctx context.Context, id string) (models.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Order{}, ErrNotFound
	}
	return o, err
}

// UpdateStatus merges the new status without re-validating the lifecycle
// beyond existence.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	if status == "" {
		return models.Order{}, invalidf("status required")
	}
	o, err := s.orders.UpdateStatus(ctx, id, status)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	s.auditAsync(o.ID, "status_change", string(status))
	return o, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	err := s.orders.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	s.auditAsync(id, "deleted", "")
	return nil
}

func (s *OrderService) auditAsync(orderID, action, detail string) {
	id := orderID
	s.wp.Submit(func() {
		var det map[string]any
		if detail != "" {
			det = map[string]any{"status": detail}
		}
		_ = s.audit.Create(context.Background(), models.AuditLog{
			EntityType: "order",
			EntityID:   &id,
			Action:     action,
			Details:    det,
		})
	})
}
