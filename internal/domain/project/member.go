package project

import "fmt"

// Role is the project-scoped role of a member.
type Role string

const (
	RoleMember     Role = "member"
	RoleMaintainer Role = "maintainer"
)

func (r Role) IsValid() bool {
	return r == RoleMember || r == RoleMaintainer
}

func (r Role) String() string {
	return string(r)
}

// Member is the (project, user) membership. At most one role exists per pair;
// the pair is the primary key.
type Member struct {
	projectID uint
	userID    uint
	role      Role
}

func NewMember(projectID, userID uint, role Role) (*Member, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	return &Member{
		projectID: projectID,
		userID:    userID,
		role:      role,
	}, nil
}

func (m *Member) ProjectID() uint {
	return m.projectID
}

func (m *Member) UserID() uint {
	return m.userID
}

func (m *Member) Role() Role {
	return m.role
}
