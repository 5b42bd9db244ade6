package project

import (
	"context"

	auditdomain "issuehub/internal/domain/audit"
	"issuehub/internal/domain/project"
	"issuehub/internal/domain/user"
	"issuehub/internal/shared/logger"
)

type mockProjectRepository struct {
	SaveFunc        func(ctx context.Context, p *project.Project) error
	GetByIDFunc     func(ctx context.Context, id uint) (*project.Project, error)
	ListForUserFunc func(ctx context.Context, userID uint) ([]*project.Project, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListForUser(ctx context.Context, userID uint) ([]*project.Project, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID)
	}
	return nil, nil
}

type mockMemberRepository struct {
	AddFunc           func(ctx context.Context, member *project.Member) error
	GetMembershipFunc func(ctx context.Context, projectID, userID uint) (*project.Member, error)
	ListMembersFunc   func(ctx context.Context, projectID uint) ([]*project.MemberInfo, error)
	RemoveFunc        func(ctx context.Context, projectID, userID uint) (bool, error)
	added             []*project.Member
}

func (m *mockMemberRepository) Add(ctx context.Context, member *project.Member) error {
	m.added = append(m.added, member)
	if m.AddFunc != nil {
		return m.AddFunc(ctx, member)
	}
	return nil
}

func (m *mockMemberRepository) GetMembership(ctx context.Context, projectID, userID uint) (*project.Member, error) {
	if m.GetMembershipFunc != nil {
		return m.GetMembershipFunc(ctx, projectID, userID)
	}
	return nil, nil
}

func (m *mockMemberRepository) ListMembers(ctx context.Context, projectID uint) ([]*project.MemberInfo, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockMemberRepository) Remove(ctx context.Context, projectID, userID uint) (bool, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, projectID, userID)
	}
	return false, nil
}

type mockUserRepository struct {
	GetByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Search(ctx context.Context, query string, limit int) ([]*user.User, error) {
	return nil, nil
}

// mockTxManager runs the function without a real transaction.
type mockTxManager struct {
	err error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type mockAuditRepository struct {
	entries []*auditdomain.Entry
}

func (m *mockAuditRepository) Append(ctx context.Context, e *auditdomain.Entry) error {
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

func (mockLogger) Debugw(msg string, keysAndValues ...any)     {}
func (mockLogger) Infow(msg string, keysAndValues ...any)      {}
func (mockLogger) Warnw(msg string, keysAndValues ...any)      {}
func (mockLogger) Errorw(msg string, keysAndValues ...any)     {}
func (m mockLogger) With(keysAndValues ...any) logger.Interface { return m }
