package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditapp "issuehub/internal/application/audit"
	"issuehub/internal/domain/issue"
	"issuehub/internal/domain/project"
	"issuehub/internal/shared/errors"
)

func newAddCommentUseCase(issues *mockIssueRepository, comments *mockCommentRepository, members *mockMemberRepository, audits *mockAuditRepository) *AddCommentUseCase {
	return NewAddCommentUseCase(
		issues,
		comments,
		newTestEngine(members),
		auditapp.NewRecorder(audits, &mockLogger{}),
		&mockLogger{},
	)
}

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	existing := reconstructTestIssue(t, 5, 10, 2)
	issues := issueStore(existing)
	audits := &mockAuditRepository{}
	members := memberTable(map[[2]uint]project.Role{
		{10, 1}: project.RoleMember,
	})
	uc := newAddCommentUseCase(issues, &mockCommentRepository{}, members, audits)

	result, err := uc.Execute(context.Background(), AddCommentCommand{
		IssueID: 5,
		ActorID: 1,
		Body:    "reproduced on the staging environment",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, uint(5), result.IssueID)
	assert.Equal(t, uint(1), result.AuthorID)
	assert.Equal(t, []string{"comment_added"}, audits.actions())
}

func TestAddCommentUseCase_Execute_GuardRejectsPII(t *testing.T) {
	existing := reconstructTestIssue(t, 5, 10, 2)
	issues := issueStore(existing)
	members := memberTable(map[[2]uint]project.Role{
		{10, 1}: project.RoleMember,
	})
	uc := newAddCommentUseCase(issues, &mockCommentRepository{}, members, &mockAuditRepository{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		IssueID: 5,
		ActorID: 1,
		Body:    "ping me at 555 123 4567",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAddCommentUseCase_Execute_NotAMember(t *testing.T) {
	existing := reconstructTestIssue(t, 5, 10, 2)
	issues := issueStore(existing)
	uc := newAddCommentUseCase(issues, &mockCommentRepository{}, memberTable(nil), &mockAuditRepository{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		IssueID: 5,
		ActorID: 1,
		Body:    "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestListCommentsUseCase_Execute_OrderedByCreation(t *testing.T) {
	existing := reconstructTestIssue(t, 5, 10, 2)
	issues := issueStore(existing)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	first, err := issue.ReconstructComment(1, 5, 2, "first", base)
	require.NoError(t, err)
	second, err := issue.ReconstructComment(2, 5, 1, "second", base.Add(time.Minute))
	require.NoError(t, err)
	comments := &mockCommentRepository{
		ListByIssueFunc: func(ctx context.Context, issueID uint) ([]*issue.Comment, error) {
			return []*issue.Comment{first, second}, nil
		},
	}
	members := memberTable(map[[2]uint]project.Role{
		{10, 1}: project.RoleMember,
	})
	uc := NewListCommentsUseCase(issues, comments, newTestEngine(members), &mockLogger{})

	result, err := uc.Execute(context.Background(), ListCommentsQuery{IssueID: 5, ActorID: 1})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "first", result[0].Body)
	assert.Equal(t, "second", result[1].Body)
}

func TestListCommentsUseCase_Execute_NotAMember(t *testing.T) {
	existing := reconstructTestIssue(t, 5, 10, 2)
	issues := issueStore(existing)
	uc := NewListCommentsUseCase(issues, &mockCommentRepository{}, newTestEngine(memberTable(nil)), &mockLogger{})

	_, err := uc.Execute(context.Background(), ListCommentsQuery{IssueID: 5, ActorID: 1})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
