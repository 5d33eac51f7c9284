package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	repo "github.com/melisaydin/shop-backend/internal/repository"
)

// DB is the slice of pgxpool.Pool the repositories use. pgxmock's pool
// satisfies it too, which is what the repo tests run against.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repositories struct {
	Users       repo.Users
	Products    repo.Products
	Carts       repo.Carts
	Orders      repo.Orders
	Contacts    repo.Contacts
	Subscribers repo.Subscribers
	AuditLogs   repo.AuditLogs
}

func NewRepositories(db DB) Repositories {
	return Repositories{
		Users:       &usersRepo{db},
		Products:    &productsRepo{db},
		Carts:       &cartsRepo{db},
		Orders:      &ordersRepo{db},
		Contacts:    &contactsRepo{db},
		Subscribers: &subscribersRepo{db},
		AuditLogs:   &auditLogsRepo{db},
	}
}

// mapErr translates pgx-level failures into the repository error taxonomy.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repo.ErrDuplicate
	}
	return err
}
