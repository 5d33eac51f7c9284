package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
)

type subscribersRepo struct{ db DB }

func (r *subscribersRepo) Create(ctx context.Context, email string) (models.Subscriber, error) {
	s := models.Subscriber{ID: uuid.NewString(), Email: email}
	err := r.db.QueryRow(ctx,
		`INSERT INTO subscribers(id, email) VALUES($1,$2) RETURNING created_at`,
		s.ID, s.Email,
	).Scan(&s.CreatedAt)
	if err != nil {
		return models.Subscriber{}, mapErr(err)
	}
	return s, nil
}

func (r *subscribersRepo) List(ctx context.Context) ([]models.Subscriber, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, email, created_at FROM subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.Subscriber
	for rows.Next() {
		var s models.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *subscribersRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM subscribers WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
