package usecases

import (
	"time"

	"issuehub/internal/domain/issue"
)

// IssueDTO is the issue representation returned to the interface layer.
type IssueDTO struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	ReporterID  uint      `json:"reporter_id"`
	AssigneeID  *uint     `json:"assignee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toIssueDTO(i *issue.Issue) *IssueDTO {
	return &IssueDTO{
		ID:          i.ID(),
		ProjectID:   i.ProjectID(),
		Title:       i.Title(),
		Description: i.Description(),
		Status:      i.Status().String(),
		Priority:    i.Priority().String(),
		ReporterID:  i.ReporterID(),
		AssigneeID:  i.AssigneeID(),
		CreatedAt:   i.CreatedAt(),
		UpdatedAt:   i.UpdatedAt(),
	}
}

// CommentDTO is the comment representation returned to the interface layer.
type CommentDTO struct {
	ID        uint      `json:"id"`
	IssueID   uint      `json:"issue_id"`
	AuthorID  uint      `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func toCommentDTO(c *issue.Comment) *CommentDTO {
	return &CommentDTO{
		ID:        c.ID(),
		IssueID:   c.IssueID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt(),
	}
}
