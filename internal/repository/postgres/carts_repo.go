package postgres

import (
	"context"

	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
)

type cartsRepo struct{ db DB }

// AddItem merges the quantity into the existing line in a single statement.
// Concurrent adds to the same (user, product) serialize on the row, so no
// increment is lost.
func (r *cartsRepo) AddItem(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error) {
	var it models.CartItem
	err := r.db.QueryRow(ctx,
		`INSERT INTO cart_items(user_id, product_id, quantity, updated_at)
		 VALUES($1, $2, $3, now())
		 ON CONFLICT (user_id, product_id)
		 DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity,
		               updated_at = now()
		 RETURNING user_id, product_id, quantity, updated_at`,
		userID, productID, quantity,
	).Scan(&it.UserID, &it.ProductID, &it.Quantity, &it.UpdatedAt)
	if err != nil {
		return models.CartItem{}, mapErr(err)
	}
	return it, nil
}

func (r *cartsRepo) ListItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, product_id, quantity, updated_at
		   FROM cart_items WHERE user_id=$1 ORDER BY product_id`,
		userID,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.CartItem{}
	for rows.Next() {
		var it models.CartItem
		if err := rows.Scan(&it.UserID, &it.ProductID, &it.Quantity, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *cartsRepo) SetQuantity(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error) {
	var it models.CartItem
	err := r.db.QueryRow(ctx,
		`UPDATE cart_items
		    SET quantity=$3, updated_at=now()
		  WHERE user_id=$1 AND product_id=$2
		  RETURNING user_id, product_id, quantity, updated_at`,
		userID, productID, quantity,
	).Scan(&it.UserID, &it.ProductID, &it.Quantity, &it.UpdatedAt)
	if err != nil {
		return models.CartItem{}, mapErr(err)
	}
	return it, nil
}

// RemoveItem is a no-op when the line does not exist.
func (r *cartsRepo) RemoveItem(ctx context.Context, userID, productID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id=$1 AND product_id=$2`,
		userID, productID,
	)
	return mapErr(err)
}

var _ repo.Carts = (*cartsRepo)(nil)
