package project

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"issuehub/internal/shared/biztime"
)

// keyPattern matches the project short key: uppercase alphanumeric, hyphen or
// underscore, length enforced separately.
var keyPattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// Project is a named workspace. Every project has at least one maintainer
// from the instant of creation; creation and the first maintainer membership
// are committed in one transaction.
type Project struct {
	id          uint
	name        string
	key         string
	description string
	createdAt   time.Time
}

func NewProject(name, key, description string) (*Project, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 120 {
		return nil, fmt.Errorf("name must be between 2 and 120 characters")
	}
	if len(key) < 2 || len(key) > 20 {
		return nil, fmt.Errorf("key must be between 2 and 20 characters")
	}
	if !keyPattern.MatchString(key) {
		return nil, fmt.Errorf("key may only contain uppercase letters, digits, hyphen and underscore")
	}
	if len(description) > 500 {
		return nil, fmt.Errorf("description exceeds maximum length of 500 characters")
	}

	return &Project{
		name:        name,
		key:         key,
		description: description,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructProject(id uint, name, key, description string, createdAt time.Time) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if key == "" {
		return nil, fmt.Errorf("project key is required")
	}

	return &Project{
		id:          id,
		name:        name,
		key:         key,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Key() string {
	return p.key
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}
