package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Update(ctx context.Context, username, newUsername, newPasswordHash string) (User, error)
}

// User represents a stored user account. Username is unique and
// case-sensitive; PasswordHash is a salted bcrypt digest, never the
// plain credential.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
