package migration

import (
	"issuehub/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ProjectModel{},
		&models.MemberModel{},
		&models.IssueModel{},
		&models.CommentModel{},
		&models.AuditLogModel{},
	}
}
