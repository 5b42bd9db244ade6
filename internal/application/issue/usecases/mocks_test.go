package usecases

import (
	"context"

	"issuehub/internal/application/authz"
	auditdomain "issuehub/internal/domain/audit"
	"issuehub/internal/domain/issue"
	"issuehub/internal/domain/project"
	"issuehub/internal/shared/logger"
)

func newTestEngine(members *mockMemberRepository) *authz.Engine {
	return authz.NewEngine(members)
}

type mockIssueRepository struct {
	SaveFunc    func(ctx context.Context, i *issue.Issue) error
	UpdateFunc  func(ctx context.Context, i *issue.Issue) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*issue.Issue, error)
	ListFunc    func(ctx context.Context, projectID uint, filter issue.Filter) ([]*issue.Issue, int64, error)
}

func (m *mockIssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return i.SetID(1)
}

func (m *mockIssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockIssueRepository) GetByID(ctx context.Context, id uint) (*issue.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockIssueRepository) List(ctx context.Context, projectID uint, filter issue.Filter) ([]*issue.Issue, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, projectID, filter)
	}
	return nil, 0, nil
}

type mockCommentRepository struct {
	SaveFunc        func(ctx context.Context, c *issue.Comment) error
	ListByIssueFunc func(ctx context.Context, issueID uint) ([]*issue.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *issue.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCommentRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.Comment, error) {
	if m.ListByIssueFunc != nil {
		return m.ListByIssueFunc(ctx, issueID)
	}
	return nil, nil
}

// mockMemberRepository resolves memberships from a static (projectID, userID)
// role table.
type mockMemberRepository struct {
	roles map[[2]uint]project.Role
}

func (m *mockMemberRepository) Add(ctx context.Context, member *project.Member) error {
	return nil
}

func (m *mockMemberRepository) GetMembership(ctx context.Context, projectID, userID uint) (*project.Member, error) {
	role, ok := m.roles[[2]uint{projectID, userID}]
	if !ok {
		return nil, nil
	}
	return project.NewMember(projectID, userID, role)
}

func (m *mockMemberRepository) ListMembers(ctx context.Context, projectID uint) ([]*project.MemberInfo, error) {
	return nil, nil
}

func (m *mockMemberRepository) Remove(ctx context.Context, projectID, userID uint) (bool, error) {
	return false, nil
}

type mockAuditRepository struct {
	entries []*auditdomain.Entry
	err     error
}

func (m *mockAuditRepository) Append(ctx context.Context, e *auditdomain.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockAuditRepository) actions() []string {
	actions := make([]string, len(m.entries))
	for i, e := range m.entries {
		actions[i] = e.Action()
	}
	return actions
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}

func (m *mockLogger) With(keysAndValues ...any) logger.Interface { return m }
