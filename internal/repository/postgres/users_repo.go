package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
)

type usersRepo struct{ db DB }

func (r *usersRepo) Create(ctx context.Context, username, email, hash, role string) (models.User, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(ctx,
		`INSERT INTO users(id, username, email, password_hash, role) VALUES($1,$2,$3,$4,$5)`,
		id, username, email, hash, role,
	)
	if err != nil {
		return models.User{}, mapErr(err)
	}
	return r.GetByID(ctx, id)
}

const userCols = `id, username, email, password_hash, role, otp, otp_expires_at, created_at, updated_at`

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id=$1`, id))
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE email=$1`, email))
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userCols+` FROM users ORDER BY created_at DESC LIMIT 100`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
			&u.OTP, &u.OTPExpiresAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) SetOTP(ctx context.Context, id, otp string, expiresAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET otp=$2, otp_expires_at=$3, updated_at=now() WHERE id=$1`,
		id, otp, expiresAt,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ResetPassword applies the new hash and clears the OTP in the same
// statement so a consumed code can never stay redeemable.
func (r *usersRepo) ResetPassword(ctx context.Context, id, hash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash=$2, otp=NULL, otp_expires_at=NULL, updated_at=now() WHERE id=$1`,
		id, hash,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type rowScanner interface{ Scan(dest ...any) error }

func (r *usersRepo) scanOne(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.OTP, &u.OTPExpiresAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, mapErr(err)
	}
	return u, nil
}
