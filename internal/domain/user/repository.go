package user

import "context"

// Repository defines the persistence contract for users. Missing users are
// reported as (nil, nil) so callers decide the error kind.
type Repository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Search(ctx context.Context, query string, limit int) ([]*User, error)
}

// PasswordHasher is the opaque credential capability.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
