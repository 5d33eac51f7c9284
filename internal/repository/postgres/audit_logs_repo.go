package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/melisaydin/shop-backend/internal/models"
)

type auditLogsRepo struct{ db DB }

func (r *auditLogsRepo) Create(ctx context.Context, l models.AuditLog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO audit_logs(id, entity_type, entity_id, action, details)
		 VALUES($1,$2,$3,$4,$5)`,
		uuid.NewString(), l.EntityType, l.EntityID, l.Action, l.Details,
	)
	return mapErr(err)
}
