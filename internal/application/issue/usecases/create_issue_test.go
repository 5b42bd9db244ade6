package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditapp "issuehub/internal/application/audit"
	"issuehub/internal/domain/issue"
	"issuehub/internal/domain/project"
	"issuehub/internal/shared/errors"
)

func memberTable(roles map[[2]uint]project.Role) *mockMemberRepository {
	return &mockMemberRepository{roles: roles}
}

func newCreateIssueUseCase(issues *mockIssueRepository, members *mockMemberRepository, audits *mockAuditRepository) *CreateIssueUseCase {
	return NewCreateIssueUseCase(
		issues,
		newTestEngine(members),
		auditapp.NewRecorder(audits, &mockLogger{}),
		&mockLogger{},
	)
}

func TestCreateIssueUseCase_Execute_Success(t *testing.T) {
	issues := &mockIssueRepository{}
	audits := &mockAuditRepository{}
	members := memberTable(map[[2]uint]project.Role{
		{10, 1}: project.RoleMember,
	})
	uc := newCreateIssueUseCase(issues, members, audits)

	desc := "steps to reproduce"
	result, err := uc.Execute(context.Background(), CreateIssueCommand{
		ProjectID:   10,
		ActorID:     1,
		Title:       "Login page crashes",
		Description: &desc,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, uint(10), result.ProjectID)
	assert.Equal(t, "open", result.Status)
	assert.Equal(t, "medium", result.Priority)
	assert.Equal(t, uint(1), result.ReporterID)
	assert.Nil(t, result.AssigneeID)
	assert.Equal(t, []string{"issue_created"}, audits.actions())
}

func TestCreateIssueUseCase_Execute_NotAMember(t *testing.T) {
	issues := &mockIssueRepository{}
	audits := &mockAuditRepository{}
	uc := newCreateIssueUseCase(issues, memberTable(nil), audits)

	_, err := uc.Execute(context.Background(), CreateIssueCommand{
		ProjectID: 10,
		ActorID:   1,
		Title:     "Login page crashes",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Empty(t, audits.actions())
}

func TestCreateIssueUseCase_Execute_GuardRejectsContent(t *testing.T) {
	pii := "reach me at bob@example.com"
	tests := []struct {
		name    string
		command CreateIssueCommand
	}{
		{
			name: "script marker in title",
			command: CreateIssueCommand{
				ProjectID: 10,
				ActorID:   1,
				Title:     "Bug <script>alert(1)</script>",
			},
		},
		{
			name: "email address in description",
			command: CreateIssueCommand{
				ProjectID:   10,
				ActorID:     1,
				Title:       "Login page crashes",
				Description: &pii,
			},
		},
	}

	members := memberTable(map[[2]uint]project.Role{
		{10, 1}: project.RoleMember,
	})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := &mockIssueRepository{
				SaveFunc: func(ctx context.Context, i *issue.Issue) error {
					t.Fatal("save should not be reached")
					return nil
				},
			}
			uc := newCreateIssueUseCase(issues, members, &mockAuditRepository{})

			_, err := uc.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreateIssueUseCase_Execute_TitleTooShort(t *testing.T) {
	members := memberTable(map[[2]uint]project.Role{
		{10, 1}: project.RoleMember,
	})
	uc := newCreateIssueUseCase(&mockIssueRepository{}, members, &mockAuditRepository{})

	_, err := uc.Execute(context.Background(), CreateIssueCommand{
		ProjectID: 10,
		ActorID:   1,
		Title:     "ab",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
