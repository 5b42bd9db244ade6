// Package auth implements signup, login and user lookup on top of the
// identity store and the opaque password hasher.
package auth

import (
	"context"
	"strings"

	auditapp "issuehub/internal/application/audit"
	"issuehub/internal/domain/user"
	"issuehub/internal/shared/errors"
	"issuehub/internal/shared/logger"
)

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

type SignupCommand struct {
	Name     string
	Email    string
	Password string
}

type UserResult struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Service struct {
	users    user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	recorder *auditapp.Recorder
	logger   logger.Interface
}

func NewService(
	users user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *Service {
	return &Service{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		recorder: recorder,
		logger:   logger,
	}
}

func toUserResult(u *user.User) *UserResult {
	return &UserResult{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Signup registers a new user. A duplicate email fails with a validation
// error before any write happens.
func (s *Service) Signup(ctx context.Context, cmd SignupCommand) (*UserResult, error) {
	if len(cmd.Password) < 8 || len(cmd.Password) > 128 {
		return nil, errors.NewValidationError("password must be between 8 and 128 characters")
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewInternalError("failed to look up user", err.Error())
	}
	if existing != nil {
		return nil, errors.NewValidationError("email already registered")
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err.Error())
	}

	newUser, err := user.NewUser(cmd.Name, email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.users.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewValidationError("email already registered")
		}
		return nil, errors.NewInternalError("failed to save user", err.Error())
	}

	s.logger.Infow("user signed up", "user_id", newUser.ID(), "email", newUser.Email())

	userID := newUser.ID()
	s.recorder.Record(ctx, &userID, "signup", "user", &userID, map[string]any{"email": newUser.Email()})

	return toUserResult(newUser), nil
}

// Login verifies credentials and mints an access token. The same generic
// unauthorized error covers unknown email and wrong password.
func (s *Service) Login(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewInternalError("failed to look up user", err.Error())
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if err := s.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.tokens.Issue(u.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to issue token", err.Error())
	}

	userID := u.ID()
	s.recorder.Record(ctx, &userID, "login", "user", &userID, nil)

	return &LoginResult{AccessToken: token, TokenType: "bearer"}, nil
}

// Logout only audits; bearer tokens stay valid until they expire.
func (s *Service) Logout(ctx context.Context, userID uint) {
	s.recorder.Record(ctx, &userID, "logout", "user", &userID, nil)
}

// GetUser loads a user by id.
func (s *Service) GetUser(ctx context.Context, id uint) (*UserResult, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("failed to load user", err.Error())
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return toUserResult(u), nil
}

// SearchUsers finds users by name or email substring, capped at 20 results.
func (s *Service) SearchUsers(ctx context.Context, query string) ([]*UserResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 || len(query) > 120 {
		return nil, errors.NewValidationError("query must be between 2 and 120 characters")
	}

	found, err := s.users.Search(ctx, query, 20)
	if err != nil {
		return nil, errors.NewInternalError("failed to search users", err.Error())
	}

	results := make([]*UserResult, len(found))
	for i, u := range found {
		results[i] = toUserResult(u)
	}
	return results, nil
}
