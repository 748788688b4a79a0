package domain

import (
	"time"
)

// User is the aggregate root for accounts. The password hash is opaque
// to this type; hashing happens in the register/login usecases and the
// hash is never serialized outward.
type User struct {
	id           string
	name         string
	email        string
	passwordHash string
	admin        bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new User aggregate (for registration).
func NewUser(id, name, email, passwordHash string, admin bool, now time.Time) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if passwordHash == "" {
		return nil, ErrEmptyPassword
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		admin:        admin,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstitutes a User from the database.
func ReconstructUser(id, name, email, passwordHash string, admin bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		admin:        admin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Getters
func (u *User) ID() string           { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Admin() bool          { return u.admin }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetName updates the display name.
func (u *User) SetName(name string, now time.Time) error {
	if name == "" {
		return ErrEmptyName
	}
	u.name = name
	u.updatedAt = now
	return nil
}

// SetEmail updates the email address. Uniqueness across users is
// checked by the usecase, not here.
func (u *User) SetEmail(email string, now time.Time) error {
	if email == "" {
		return ErrEmptyEmail
	}
	u.email = email
	u.updatedAt = now
	return nil
}

// SetPasswordHash replaces the credential secret.
func (u *User) SetPasswordHash(hash string, now time.Time) error {
	if hash == "" {
		return ErrEmptyPassword
	}
	u.passwordHash = hash
	u.updatedAt = now
	return nil
}

// SetAdmin toggles the admin flag.
func (u *User) SetAdmin(admin bool, now time.Time) {
	u.admin = admin
	u.updatedAt = now
}
