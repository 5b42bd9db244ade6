package auth

import (
	"context"
	"strings"

	auditdomain "issuehub/internal/domain/audit"
	"issuehub/internal/domain/user"
	"issuehub/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *user.User) error
	GetByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	SearchFunc     func(ctx context.Context, query string, limit int) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return u.SetID(1)
}

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
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}
	return nil, nil
}

type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockHasher) Verify(password, hash string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return errMismatch
}

var errMismatch = &mismatchError{}

type mismatchError struct{}

func (*mismatchError) Error() string { return "password verification failed" }

type mockTokenIssuer struct {
	IssueFunc func(userID uint) (string, error)
}

func (m *mockTokenIssuer) Issue(userID uint) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID)
	}
	return "token", nil
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

type mockLogger struct {
	messages []string
}

func (m *mockLogger) log(msg string) {
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) { m.log(msg) }
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  { m.log(msg) }
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  { m.log(msg) }
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) { m.log(msg) }

func (m *mockLogger) With(keysAndValues ...any) logger.Interface { return m }

func (m *mockLogger) contains(substr string) bool {
	for _, msg := range m.messages {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}
