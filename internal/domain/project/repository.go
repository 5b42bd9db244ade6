package project

import "context"

// Repository defines the persistence contract for projects.
type Repository interface {
	Save(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	ListForUser(ctx context.Context, userID uint) ([]*Project, error)
}

// MemberInfo is a membership joined with the member's user record, for
// member listings.
type MemberInfo struct {
	UserID uint
	Name   string
	Email  string
	Role   Role
}

// MemberRepository defines the persistence contract for project memberships.
// GetMembership returns (nil, nil) when the pair holds no membership.
type MemberRepository interface {
	Add(ctx context.Context, m *Member) error
	GetMembership(ctx context.Context, projectID, userID uint) (*Member, error)
	ListMembers(ctx context.Context, projectID uint) ([]*MemberInfo, error)
	Remove(ctx context.Context, projectID, userID uint) (bool, error)
}
