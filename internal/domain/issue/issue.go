package issue

import (
	"fmt"
	"strings"
	"time"

	"issuehub/internal/shared/biztime"
)

// Issue belongs to exactly one project. The reporter is set at creation and
// never changes; updated_at is refreshed on every mutation.
type Issue struct {
	id          uint
	projectID   uint
	title       string
	description *string
	status      Status
	priority    Priority
	reporterID  uint
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func validateTitle(title string) error {
	if len(title) < 3 {
		return fmt.Errorf("title must be at least 3 characters")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	return nil
}

func validateDescription(description *string) error {
	if description != nil && len(*description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	return nil
}

func NewIssue(
	projectID uint,
	title string,
	description *string,
	priority Priority,
	reporterID uint,
	assigneeID *uint,
) (*Issue, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority %q", priority)
	}

	now := biztime.NowUTC()
	return &Issue{
		projectID:   projectID,
		title:       title,
		description: description,
		status:      StatusOpen,
		priority:    priority,
		reporterID:  reporterID,
		assigneeID:  assigneeID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructIssue(
	id uint,
	projectID uint,
	title string,
	description *string,
	status Status,
	priority Priority,
	reporterID uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority %q", priority)
	}

	return &Issue{
		id:          id,
		projectID:   projectID,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		reporterID:  reporterID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (i *Issue) ID() uint {
	return i.id
}

func (i *Issue) ProjectID() uint {
	return i.projectID
}

func (i *Issue) Title() string {
	return i.title
}

func (i *Issue) Description() *string {
	return i.description
}

func (i *Issue) Status() Status {
	return i.status
}

func (i *Issue) Priority() Priority {
	return i.priority
}

func (i *Issue) ReporterID() uint {
	return i.reporterID
}

func (i *Issue) AssigneeID() *uint {
	return i.assigneeID
}

func (i *Issue) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Issue) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	AssigneeID  *uint
}

// IsEmpty reports whether the patch carries no changes.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.AssigneeID == nil
}

// Apply mutates the issue with the fields present in the patch and refreshes
// updated_at. Field-level authorization has already happened by the time a
// patch reaches the entity.
func (i *Issue) Apply(p Patch) error {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if err := validateTitle(title); err != nil {
			return err
		}
		i.title = title
	}
	if p.Description != nil {
		if err := validateDescription(p.Description); err != nil {
			return err
		}
		i.description = p.Description
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return fmt.Errorf("invalid status %q", *p.Status)
		}
		i.status = *p.Status
	}
	if p.Priority != nil {
		if !p.Priority.IsValid() {
			return fmt.Errorf("invalid priority %q", *p.Priority)
		}
		i.priority = *p.Priority
	}
	if p.AssigneeID != nil {
		if *p.AssigneeID == 0 {
			i.assigneeID = nil
		} else {
			assignee := *p.AssigneeID
			i.assigneeID = &assignee
		}
	}

	i.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus transitions the issue to the given status.
func (i *Issue) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q", status)
	}
	i.status = status
	i.updatedAt = biztime.NowUTC()
	return nil
}
