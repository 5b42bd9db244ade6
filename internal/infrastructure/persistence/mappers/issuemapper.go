package mappers

import (
	"time"

	"issuehub/internal/domain/issue"
	"issuehub/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between Issue domain entities and
// persistence models.
type IssueMapper interface {
	ToModel(i *issue.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*issue.Issue, error)
	CommentToModel(c *issue.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*issue.Comment, error)
}

type IssueMapperImpl struct{}

func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(i *issue.Issue) *models.IssueModel {
	return &models.IssueModel{
		ID:          i.ID(),
		ProjectID:   i.ProjectID(),
		Title:       i.Title(),
		Description: i.Description(),
		Status:      i.Status().String(),
		Priority:    i.Priority().String(),
		ReporterID:  i.ReporterID(),
		AssigneeID:  i.AssigneeID(),
		CreatedAt:   i.CreatedAt().UnixMilli(),
		UpdatedAt:   i.UpdatedAt().UnixMilli(),
	}
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	return issue.ReconstructIssue(
		model.ID,
		model.ProjectID,
		model.Title,
		model.Description,
		issue.Status(model.Status),
		issue.Priority(model.Priority),
		model.ReporterID,
		model.AssigneeID,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *IssueMapperImpl) CommentToModel(c *issue.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		IssueID:   c.IssueID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *IssueMapperImpl) CommentToDomain(model *models.CommentModel) (*issue.Comment, error) {
	return issue.ReconstructComment(
		model.ID,
		model.IssueID,
		model.AuthorID,
		model.Body,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
