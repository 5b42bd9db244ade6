package models

import "gorm.io/datatypes"

type AuditLogModel struct {
	ID         uint           `gorm:"primaryKey"`
	ActorID    *uint          `gorm:"index"`
	Action     string         `gorm:"size:50;not null;index"`
	EntityType string         `gorm:"size:50;not null"`
	EntityID   *uint          `gorm:"index"`
	Metadata   datatypes.JSON `gorm:"type:json"`
	CreatedAt  int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
