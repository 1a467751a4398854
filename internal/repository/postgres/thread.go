package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avolkhin/forum-server/internal/model"
)

var _ model.ThreadStore = (*ThreadRepository)(nil)

type ThreadRepository struct {
	db *Connection
}

func NewThreadRepository(db *Connection) *ThreadRepository {
	return &ThreadRepository{
		db: db,
	}
}

// CreateWithOpeningPost inserts the thread and its opening post in a
// single transaction. The forum existence check runs inside the same
// transaction, so a thread can never be observed without its opening
// post and no partial rows survive a failure.
func (r *ThreadRepository) CreateWithOpeningPost(ctx context.Context, thread model.Thread, openingPost model.Post) (model.Thread, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Thread{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var forumID int64
	err = tx.QueryRow(ctx, `SELECT id FROM forums WHERE id = $1`, thread.ForumID).Scan(&forumID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Thread{}, model.ErrForumNotFound
		}
		return model.Thread{}, fmt.Errorf("failed to check forum: %w", err)
	}

	var savedThread model.Thread
	err = tx.QueryRow(ctx,
		`INSERT INTO threads (forum_id, title)
		 VALUES ($1, $2)
		 RETURNING id, forum_id, title, created_at`,
		thread.ForumID, thread.Title,
	).Scan(&savedThread.ID, &savedThread.ForumID, &savedThread.Title, &savedThread.CreatedAt)
	if err != nil {
		return model.Thread{}, fmt.Errorf("failed to create thread: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO posts (thread_id, author_id, body) VALUES ($1, $2, $3)`,
		savedThread.ID, openingPost.AuthorID, openingPost.Body,
	)
	if err != nil {
		return model.Thread{}, fmt.Errorf("failed to create opening post: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Thread{}, fmt.Errorf("failed to commit thread creation: %w", err)
	}

	return savedThread, nil
}

// ListByForum returns thread summaries for a forum. The creator is the
// author of the earliest post, last activity the timestamp of the
// latest post; ties on timestamps break on post id so the result is
// deterministic.
func (r *ThreadRepository) ListByForum(ctx context.Context, forumID int64) ([]model.ThreadSummary, error) {
	query := `SELECT t.id, t.title,
			         (SELECT u.username
			          FROM posts p
			          JOIN users u ON u.id = p.author_id
			          WHERE p.thread_id = t.id
			          ORDER BY p.created_at ASC, p.id ASC
			          LIMIT 1),
			         (SELECT p.created_at
			          FROM posts p
			          WHERE p.thread_id = t.id
			          ORDER BY p.created_at DESC, p.id DESC
			          LIMIT 1)
			  FROM threads t
			  WHERE t.forum_id = $1
			  ORDER BY t.id ASC`

	rows, err := r.db.Query(ctx, query, forumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	var threads []model.ThreadSummary
	for rows.Next() {
		var thread model.ThreadSummary
		err := rows.Scan(
			&thread.ID, &thread.Title, &thread.CreatorUsername, &thread.LastActivityAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, thread)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read threads: %w", err)
	}

	return threads, nil
}

func (r *ThreadRepository) ExistsInForum(ctx context.Context, forumID, threadID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1 AND forum_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, threadID, forumID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check thread existence: %w", err)
	}

	return exists, nil
}
