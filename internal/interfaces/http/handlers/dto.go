package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"issuehub/internal/application/issue/usecases"
	"issuehub/internal/shared/utils"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=120"`
	Key         string `json:"key" binding:"required,min=2,max=20"`
	Description string `json:"description" binding:"max=500"`
}

type AddMemberRequest struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type CreateIssueRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	Description *string `json:"description"`
	Priority    string  `json:"priority"`
	AssigneeID  *uint   `json:"assignee_id"`
}

type UpdateIssueRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssigneeID  *uint   `json:"assignee_id"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddCommentRequest struct {
	Body string `json:"body" binding:"required,min=1,max=4000"`
}

// parseListIssuesQuery reads the listing filters from the query string. Limit
// and offset fall back to the use case defaults on absent or malformed input.
func parseListIssuesQuery(c *gin.Context, projectID, actorID uint) usecases.ListIssuesQuery {
	q := usecases.ListIssuesQuery{
		ProjectID: projectID,
		ActorID:   actorID,
		Query:     strings.TrimSpace(c.Query("q")),
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Sort:      c.Query("sort"),
	}

	if raw := c.Query("assignee_id"); raw != "" {
		if id, ok := parseUintQuery(raw); ok {
			q.AssigneeID = &id
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, ok := parseIntQuery(raw); ok {
			q.Limit = v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, ok := parseIntQuery(raw); ok {
			q.Offset = v
		}
	}

	return q
}

// bindingError converts gin binding failures into the validation error shape.
func bindingError(err error) error {
	return utils.FormatValidationError(err)
}
