package model

import (
	"context"
	"time"
)

// ForumStore defines persistence operations for forums.
type ForumStore interface {
	Create(ctx context.Context, forum Forum) (Forum, error)
	List(ctx context.Context, limit int) ([]Forum, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// Forum is a top-level named container for threads. Name is unique,
// CreatorID is immutable after creation.
type Forum struct {
	ID              int64
	Name            string
	CreatorID       int64
	CreatorUsername string
	CreatedAt       time.Time
}
