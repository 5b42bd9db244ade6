package issue

import "context"

// Sort keys accepted by List. An empty key orders by id ascending so pages
// are stable across calls.
const (
	SortCreatedAt = "created_at"
	SortPriority  = "priority"
	SortStatus    = "status"
)

// Filter narrows a project-scoped issue listing. All set fields combine with
// AND. The count a listing reports applies the same predicates without the
// limit/offset window.
type Filter struct {
	Query      string
	Status     *Status
	Priority   *Priority
	AssigneeID *uint
	Sort       string
	Limit      int
	Offset     int
}

// Repository defines the persistence contract for issues.
type Repository interface {
	Save(ctx context.Context, i *Issue) error
	Update(ctx context.Context, i *Issue) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Issue, error)
	List(ctx context.Context, projectID uint, filter Filter) ([]*Issue, int64, error)
}

// CommentRepository defines the persistence contract for issue comments.
type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	ListByIssue(ctx context.Context, issueID uint) ([]*Comment, error)
}
