package mappers

import (
	"time"

	"issuehub/internal/domain/project"
	"issuehub/internal/infrastructure/persistence/models"
)

// ProjectMapper handles the conversion between Project domain entities and
// persistence models.
type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)
	MemberToModel(m *project.Member) *models.MemberModel
	MemberToDomain(model *models.MemberModel) (*project.Member, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Key:         p.Key(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	return project.ReconstructProject(
		model.ID,
		model.Name,
		model.Key,
		model.Description,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *ProjectMapperImpl) MemberToModel(member *project.Member) *models.MemberModel {
	return &models.MemberModel{
		ProjectID: member.ProjectID(),
		UserID:    member.UserID(),
		Role:      member.Role().String(),
	}
}

func (m *ProjectMapperImpl) MemberToDomain(model *models.MemberModel) (*project.Member, error) {
	return project.NewMember(model.ProjectID, model.UserID, project.Role(model.Role))
}
