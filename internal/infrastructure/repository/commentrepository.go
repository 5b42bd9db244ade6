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

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *issue.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.Comment, error) {
	var found []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at ASC, id ASC").
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*issue.Comment, 0, len(found))
	for i := range found {
		c, err := r.mapper.CommentToDomain(&found[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}
