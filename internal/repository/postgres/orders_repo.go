package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
)

type ordersRepo struct{ db DB }

// Create writes the order row and its items inside one transaction; an
// order never exists half-written.
func (r *ordersRepo) Create(ctx context.Context, o models.Order) (models.Order, error) {
	o.ID = uuid.NewString()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Order{}, mapErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO orders(id, total_price, status) VALUES($1,$2,$3)`,
		o.ID, o.TotalPrice, o.Status,
	); err != nil {
		return models.Order{}, mapErr(err)
	}
	for i, it := range o.Items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO order_items(order_id, product_id, quantity, position) VALUES($1,$2,$3,$4)`,
			o.ID, it.ProductID, it.Quantity, i,
		); err != nil {
			return models.Order{}, mapErr(err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return models.Order{}, mapErr(err)
	}
	return r.GetByID(ctx, o.ID)
}

func (r *ordersRepo) GetByID(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := r.db.QueryRow(ctx,
		`SELECT id, total_price, status, created_at, updated_at FROM orders WHERE id=$1`, id,
	).Scan(&o.ID, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return models.Order{}, mapErr(err)
	}
	items, err := r.listItems(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *ordersRepo) List(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, total_price, status, created_at, updated_at FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		items, err := r.listItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *ordersRepo) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status=$2, updated_at=now() WHERE id=$1`,
		id, status,
	)
	if err != nil {
		return models.Order{}, mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.Order{}, repo.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ordersRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ordersRepo) listItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT product_id, quantity FROM order_items WHERE order_id=$1 ORDER BY position`, orderID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
