package audit

import (
	"fmt"
	"time"

	"issuehub/internal/shared/biztime"
)

// Entry is an immutable record of a single state-changing action.
type Entry struct {
	id         uint
	actorID    *uint
	action     string
	entityType string
	entityID   *uint
	metadata   map[string]any
	createdAt  time.Time
}

func NewEntry(actorID *uint, action, entityType string, entityID *uint, metadata map[string]any) (*Entry, error) {
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	if entityType == "" {
		return nil, fmt.Errorf("entity type is required")
	}

	return &Entry{
		actorID:    actorID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		metadata:   metadata,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructEntry(id uint, actorID *uint, action, entityType string, entityID *uint, metadata map[string]any, createdAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}

	return &Entry{
		id:         id,
		actorID:    actorID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		metadata:   metadata,
		createdAt:  createdAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) ActorID() *uint {
	return e.actorID
}

func (e *Entry) Action() string {
	return e.action
}

func (e *Entry) EntityType() string {
	return e.entityType
}

func (e *Entry) EntityID() *uint {
	return e.entityID
}

func (e *Entry) Metadata() map[string]any {
	return e.metadata
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}
