package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"issuehub/internal/domain/audit"
	"issuehub/internal/infrastructure/persistence/mappers"
	db "issuehub/internal/shared/db"
)

type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditMapper
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{
		db:     db,
		mapper: mappers.NewAuditMapper(),
	}
}

func (r *AuditLogRepository) Append(ctx context.Context, e *audit.Entry) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return fmt.Errorf("failed to serialize audit entry: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return e.SetID(model.ID)
}
