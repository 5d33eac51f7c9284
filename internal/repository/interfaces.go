package repository

import (
	"context"
	"time"

	"github.com/melisaydin/shop-backend/internal/models"
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash, role string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)

	// SetOTP overwrites any outstanding reset code for the user.
	SetOTP(ctx context.Context, id, otp string, expiresAt time.Time) error
	// ResetPassword stores the new hash and clears the OTP in one write.
	ResetPassword(ctx context.Context, id, passwordHash string) error
}

type Products interface {
	Create(ctx context.Context, p models.Product) (models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, p models.Product) (models.Product, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type Carts interface {
	// AddItem merges quantity into the (user, product) line atomically.
	AddItem(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error)
	ListItems(ctx context.Context, userID string) ([]models.CartItem, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error)
	RemoveItem(ctx context.Context, userID, productID string) error
}

type Orders interface {
	Create(ctx context.Context, o models.Order) (models.Order, error)
	GetByID(ctx context.Context, id string) (models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)
	Delete(ctx context.Context, id string) error
}

type Contacts interface {
	Create(ctx context.Context, c models.Contact) (models.Contact, error)
}

type Subscribers interface {
	Create(ctx context.Context, email string) (models.Subscriber, error)
	List(ctx context.Context) ([]models.Subscriber, error)
	Delete(ctx context.Context, id string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
