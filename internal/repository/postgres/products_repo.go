package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
)

type productsRepo struct{ db DB }

const productCols = `id, name, price, description, image_url, created_at, updated_at`

func (r *productsRepo) Create(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = uuid.NewString()
	_, err := r.db.Exec(ctx,
		`INSERT INTO products(id, name, price, description, image_url) VALUES($1,$2,$3,$4,$5)`,
		p.ID, p.Name, p.Price, p.Description, p.ImageURL,
	)
	if err != nil {
		return models.Product{}, mapErr(err)
	}
	return r.GetByID(ctx, p.ID)
}

func (r *productsRepo) GetByID(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(ctx,
		`SELECT `+productCols+` FROM products WHERE id=$1`, id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Product{}, mapErr(err)
	}
	return p, nil
}

func (r *productsRepo) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productCols+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *productsRepo) Update(ctx context.Context, p models.Product) (models.Product, error) {
	_, err := r.db.Exec(ctx,
		`UPDATE products SET name=$2, price=$3, description=$4, image_url=$5, updated_at=now() WHERE id=$1`,
		p.ID, p.Name, p.Price, p.Description, p.ImageURL,
	)
	if err != nil {
		return models.Product{}, mapErr(err)
	}
	return r.GetByID(ctx, p.ID)
}

func (r *productsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *productsRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id=$1)`, id).Scan(&exists)
	return exists, mapErr(err)
}
