package issue

import (
	"fmt"
	"time"

	"issuehub/internal/shared/biztime"
)

// Comment is append-only: never updated or deleted, ordered by creation.
type Comment struct {
	id        uint
	issueID   uint
	authorID  uint
	body      string
	createdAt time.Time
}

func NewComment(issueID, authorID uint, body string) (*Comment, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body cannot be empty")
	}
	if len(body) > 4000 {
		return nil, fmt.Errorf("body exceeds maximum length of 4000 characters")
	}

	return &Comment{
		issueID:   issueID,
		authorID:  authorID,
		body:      body,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(id, issueID, authorID uint, body string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}

	return &Comment{
		id:        id,
		issueID:   issueID,
		authorID:  authorID,
		body:      body,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) IssueID() uint {
	return c.issueID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
