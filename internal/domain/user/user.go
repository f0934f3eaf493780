// Package user models the admin accounts that operate the CMS.
package user

import (
	"fmt"
	"strings"
	"time"
)

// User is an admin account. The site has no customer accounts; everyone who
// can log in manages content.
type User struct {
	id           uint
	email        string
	passwordHash string
	name         string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email, passwordHash, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email format")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &User{
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, email, passwordHash, name string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Name() string         { return u.name }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

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

func (u *User) ChangePassword(newHash string) error {
	if newHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = newHash
	u.updatedAt = time.Now()
	return nil
}
