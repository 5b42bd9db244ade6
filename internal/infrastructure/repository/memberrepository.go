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

type MemberRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *MemberRepository) Add(ctx context.Context, m *project.Member) error {
	model := r.mapper.MemberToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (r *MemberRepository) GetMembership(ctx context.Context, projectID, userID uint) (*project.Member, error) {
	var model models.MemberModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return r.mapper.MemberToDomain(&model)
}

func (r *MemberRepository) ListMembers(ctx context.Context, projectID uint) ([]*project.MemberInfo, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		UserID uint
		Name   string
		Email  string
		Role   string
	}
	err := tx.
		Table("project_members").
		Select("project_members.user_id, users.name, users.email, project_members.role").
		Joins("JOIN users ON users.id = project_members.user_id").
		Where("project_members.project_id = ?", projectID).
		Order("project_members.user_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]*project.MemberInfo, 0, len(rows))
	for _, row := range rows {
		members = append(members, &project.MemberInfo{
			UserID: row.UserID,
			Name:   row.Name,
			Email:  row.Email,
			Role:   project.Role(row.Role),
		})
	}
	return members, nil
}

func (r *MemberRepository) Remove(ctx context.Context, projectID, userID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.MemberModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove member: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
