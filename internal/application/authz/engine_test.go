package authz

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuehub/internal/domain/issue"
	"issuehub/internal/domain/project"
	"issuehub/internal/shared/errors"
)

type mockMemberRepository struct {
	GetMembershipFunc func(ctx context.Context, projectID, userID uint) (*project.Member, error)
	calls             int
}

func (m *mockMemberRepository) Add(ctx context.Context, member *project.Member) error {
	return nil
}

func (m *mockMemberRepository) GetMembership(ctx context.Context, projectID, userID uint) (*project.Member, error) {
	m.calls++
	if m.GetMembershipFunc != nil {
		return m.GetMembershipFunc(ctx, projectID, userID)
	}
	return nil, nil
}

func (m *mockMemberRepository) ListMembers(ctx context.Context, projectID uint) ([]*project.MemberInfo, error) {
	return nil, nil
}

func (m *mockMemberRepository) Remove(ctx context.Context, projectID, userID uint) (bool, error) {
	return false, nil
}

func membership(t *testing.T, projectID, userID uint, role project.Role) *project.Member {
	t.Helper()
	m, err := project.NewMember(projectID, userID, role)
	require.NoError(t, err)
	return m
}

func TestResolveRole(t *testing.T) {
	repo := &mockMemberRepository{
		GetMembershipFunc: func(ctx context.Context, projectID, userID uint) (*project.Member, error) {
			if projectID == 1 && userID == 7 {
				return membership(t, 1, 7, project.RoleMaintainer), nil
			}
			return nil, nil
		},
	}
	engine := NewEngine(repo)

	role, ok, err := engine.ResolveRole(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, project.RoleMaintainer, role)

	_, ok, err = engine.ResolveRole(context.Background(), 1, 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveRoleIsIdempotent(t *testing.T) {
	repo := &mockMemberRepository{
		GetMembershipFunc: func(ctx context.Context, projectID, userID uint) (*project.Member, error) {
			return membership(t, projectID, userID, project.RoleMember), nil
		},
	}
	engine := NewEngine(repo)

	for i := 0; i < 5; i++ {
		role, ok, err := engine.ResolveRole(context.Background(), 3, 4)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, project.RoleMember, role)
	}
	assert.Equal(t, 5, repo.calls)
}

func TestAuthorizeProjectAccessForbiddenForNonMember(t *testing.T) {
	engine := NewEngine(&mockMemberRepository{})

	_, err := engine.AuthorizeProjectAccess(context.Background(), 1, 2)
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAuthorizeProjectAccessWrapsStoreFailure(t *testing.T) {
	repo := &mockMemberRepository{
		GetMembershipFunc: func(ctx context.Context, projectID, userID uint) (*project.Member, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}
	engine := NewEngine(repo)

	_, err := engine.AuthorizeProjectAccess(context.Background(), 1, 2)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestRequireMaintainer(t *testing.T) {
	tests := []struct {
		name      string
		role      *project.Role
		wantError bool
	}{
		{"maintainer allowed", roleptr(project.RoleMaintainer), false},
		{"member forbidden", roleptr(project.RoleMember), true},
		{"non-member forbidden", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockMemberRepository{
				GetMembershipFunc: func(ctx context.Context, projectID, userID uint) (*project.Member, error) {
					if tt.role == nil {
						return nil, nil
					}
					return membership(t, projectID, userID, *tt.role), nil
				},
			}
			engine := NewEngine(repo)

			err := engine.RequireMaintainer(context.Background(), 1, 2)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.IsForbiddenError(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func roleptr(r project.Role) *project.Role { return &r }

func TestAllowedIssueFields(t *testing.T) {
	memberFields := AllowedIssueFields(project.RoleMember)
	assert.True(t, memberFields[FieldTitle])
	assert.True(t, memberFields[FieldDescription])
	assert.True(t, memberFields[FieldPriority])
	assert.False(t, memberFields[FieldStatus])
	assert.False(t, memberFields[FieldAssigneeID])

	maintainerFields := AllowedIssueFields(project.RoleMaintainer)
	assert.True(t, maintainerFields[FieldStatus])
	assert.True(t, maintainerFields[FieldAssigneeID])
}

func TestFilterIssuePatchDropsPrivilegedFieldsForMember(t *testing.T) {
	title := "new title"
	status := issue.StatusClosed
	assignee := uint(9)
	patch := issue.Patch{Title: &title, Status: &status, AssigneeID: &assignee}

	filtered := FilterIssuePatch(project.RoleMember, patch)
	assert.NotNil(t, filtered.Title)
	assert.Nil(t, filtered.Status)
	assert.Nil(t, filtered.AssigneeID)

	kept := FilterIssuePatch(project.RoleMaintainer, patch)
	assert.NotNil(t, kept.Status)
	assert.NotNil(t, kept.AssigneeID)
}

func TestCanMutateIssue(t *testing.T) {
	reported, err := issue.NewIssue(1, "Login bug", nil, issue.PriorityHigh, 7, nil)
	require.NoError(t, err)

	assert.True(t, CanMutateIssue(project.RoleMaintainer, reported, 99))
	assert.True(t, CanMutateIssue(project.RoleMember, reported, 7))
	assert.False(t, CanMutateIssue(project.RoleMember, reported, 8))
}
