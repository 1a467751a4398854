package model

import (
	"context"
	"time"
)

// ThreadStore defines persistence operations for threads.
type ThreadStore interface {
	// CreateWithOpeningPost inserts a thread together with its opening
	// post in one transaction. Either both rows exist afterwards or
	// neither does.
	CreateWithOpeningPost(ctx context.Context, thread Thread, openingPost Post) (Thread, error)
	ListByForum(ctx context.Context, forumID int64) ([]ThreadSummary, error)
	ExistsInForum(ctx context.Context, forumID, threadID int64) (bool, error)
}

// Thread is a titled conversation inside a forum. A thread always has
// at least one post: its opening post is created in the same
// transaction as the thread itself.
type Thread struct {
	ID        int64
	ForumID   int64
	Title     string
	CreatedAt time.Time
}

// ThreadSummary is the denormalized read shape of a thread listing.
// CreatorUsername is the author of the earliest post (lowest post id on
// equal timestamps), LastActivityAt the timestamp of the latest post
// (highest post id on equal timestamps).
type ThreadSummary struct {
	ID              int64
	Title           string
	CreatorUsername string
	LastActivityAt  time.Time
}
