package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"issuehub/internal/domain/issue"
	"issuehub/internal/infrastructure/persistence/mappers"
	"issuehub/internal/infrastructure/persistence/models"
	db "issuehub/internal/shared/db"
)

// Priority and status ordering follow their semantic ranking, not the
// lexicographic order of the stored strings.
const (
	prioritySeverityCase = "CASE priority " +
		"WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END"
	statusOrderCase = "CASE status " +
		"WHEN 'open' THEN 1 WHEN 'in_progress' THEN 2 WHEN 'resolved' THEN 3 WHEN 'closed' THEN 4 ELSE 5 END"
)

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *IssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save issue: %w", err)
	}

	return i.SetID(model.ID)
}

func (r *IssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes every column so cleared nullable fields (assignee,
	// description) persist; Updates would skip zero values.
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update issue: %w", err)
	}
	return nil
}

func (r *IssueRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	// The issue row and its comments go together or not at all.
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.IssueModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete issue: %w", err)
		}
		if err := tx.Where("issue_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete issue comments: %w", err)
		}
		return nil
	})
}

func (r *IssueRepository) GetByID(ctx context.Context, id uint) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns one page of a project's issues plus the total count of rows
// matching the same predicates without the window.
func (r *IssueRepository) List(ctx context.Context, projectID uint, filter issue.Filter) ([]*issue.Issue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.IssueModel{}).Where("project_id = ?", projectID)

	if filter.Query != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Query+"%")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count issues: %w", err)
	}

	switch filter.Sort {
	case issue.SortCreatedAt:
		query = query.Order("created_at DESC")
	case issue.SortPriority:
		query = query.Order(prioritySeverityCase + " DESC")
	case issue.SortStatus:
		query = query.Order(statusOrderCase + " ASC")
	default:
		query = query.Order("id ASC")
	}
	// Secondary key keeps pages stable when the primary key ties.
	query = query.Order("id ASC")

	var found []models.IssueModel
	if err := query.Limit(filter.Limit).Offset(filter.Offset).Find(&found).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*issue.Issue, 0, len(found))
	for i := range found {
		converted, err := r.mapper.ToDomain(&found[i])
		if err != nil {
			return nil, 0, err
		}
		issues = append(issues, converted)
	}
	return issues, total, nil
}
