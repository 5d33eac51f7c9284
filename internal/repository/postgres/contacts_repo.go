package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/melisaydin/shop-backend/internal/models"
)

type contactsRepo struct{ db DB }

func (r *contactsRepo) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	c.ID = uuid.NewString()
	err := r.db.QueryRow(ctx,
		`INSERT INTO contacts(id, name, email, phone, message)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING created_at`,
		c.ID, c.Name, c.Email, c.Phone, c.Message,
	).Scan(&c.CreatedAt)
	if err != nil {
		return models.Contact{}, mapErr(err)
	}
	return c, nil
}
