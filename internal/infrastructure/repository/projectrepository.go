package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"issuehub/internal/domain/project"
	"issuehub/internal/infrastructure/persistence/mappers"
	"issuehub/internal/infrastructure/persistence/models"
	db "issuehub/internal/shared/db"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) ListForUser(ctx context.Context, userID uint) ([]*project.Project, error) {
	var found []models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.user_id = ?", userID).
		Order("projects.id ASC").
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, 0, len(found))
	for i := range found {
		p, err := r.mapper.ToDomain(&found[i])
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
