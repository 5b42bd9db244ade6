package user

import (
	"fmt"
	"strings"
	"time"

	"issuehub/internal/shared/biztime"
)

// User is the identity aggregate. The password credential is stored as an
// opaque hash; verification goes through the PasswordHasher capability.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	createdAt    time.Time
}

func NewUser(name, email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 120 {
		return nil, fmt.Errorf("name must be between 2 and 120 characters")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructUser(id uint, name, email, passwordHash string, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
