package mappers

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"issuehub/internal/domain/audit"
	"issuehub/internal/infrastructure/persistence/models"
)

// AuditMapper handles the conversion between audit entries and persistence
// models. Metadata is serialized to a JSON column.
type AuditMapper interface {
	ToModel(e *audit.Entry) (*models.AuditLogModel, error)
	ToDomain(model *models.AuditLogModel) (*audit.Entry, error)
}

type AuditMapperImpl struct{}

func NewAuditMapper() AuditMapper {
	return &AuditMapperImpl{}
}

func (m *AuditMapperImpl) ToModel(e *audit.Entry) (*models.AuditLogModel, error) {
	model := &models.AuditLogModel{
		ID:         e.ID(),
		ActorID:    e.ActorID(),
		Action:     e.Action(),
		EntityType: e.EntityType(),
		EntityID:   e.EntityID(),
		CreatedAt:  e.CreatedAt().UnixMilli(),
	}

	if len(e.Metadata()) > 0 {
		raw, err := json.Marshal(e.Metadata())
		if err != nil {
			return nil, err
		}
		model.Metadata = datatypes.JSON(raw)
	}

	return model, nil
}

func (m *AuditMapperImpl) ToDomain(model *models.AuditLogModel) (*audit.Entry, error) {
	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, err
		}
	}

	return audit.ReconstructEntry(
		model.ID,
		model.ActorID,
		model.Action,
		model.EntityType,
		model.EntityID,
		metadata,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
