package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForumNotFound is returned when the addressed forum does not exist.
	ErrForumNotFound = errors.New("forum not found")
	// ErrThreadNotFound is returned when the addressed thread does not
	// exist in the addressed forum.
	ErrThreadNotFound = errors.New("thread not found")
	// ErrConflict is returned when a unique name is already taken.
	ErrConflict = errors.New("already exists")
	// ErrForbidden is returned when the acting user may not perform the
	// operation on the target.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials is returned when presented credentials do not
	// match a known user.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
