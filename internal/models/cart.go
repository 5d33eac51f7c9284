package models

import "time"

// CartItem is one line of a user's cart. A (user, product) pair never has
// more than one line; adding the same product again merges quantities.
type CartItem struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}
