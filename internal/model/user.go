package model

import "context"

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a provisioned account. PasswordHash is an opaque bcrypt
// digest; the plaintext is never stored.
type User struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
}

// SeedUser is a bootstrap account definition with a plaintext password that
// is hashed on first seed only.
type SeedUser struct {
	Name     string
	Username string
	Password string
}
