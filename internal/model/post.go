package model

import (
	"context"
	"time"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	// ListByThread returns all posts of a thread ordered most recent
	// first; posts sharing a timestamp keep insertion order.
	ListByThread(ctx context.Context, threadID int64) ([]Post, error)
}

// Post is a single authored message inside a thread. CreatedAt is
// assigned by the store at insert time.
type Post struct {
	ID             int64
	ThreadID       int64
	AuthorID       int64
	AuthorUsername string
	Body           string
	CreatedAt      time.Time
}
