package postgres

import (
	"context"
	"fmt"

	"github.com/avolkhin/forum-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO posts (thread_id, author_id, body)
			  VALUES ($1, $2, $3)
			  RETURNING id, thread_id, author_id, body, created_at`

	var savedPost model.Post
	err := r.db.QueryRow(ctx, query, post.ThreadID, post.AuthorID, post.Body).Scan(
		&savedPost.ID, &savedPost.ThreadID, &savedPost.AuthorID, &savedPost.Body, &savedPost.CreatedAt,
	)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return savedPost, nil
}

// ListByThread returns posts newest first; equal timestamps keep
// insertion order (lower id first).
func (r *PostRepository) ListByThread(ctx context.Context, threadID int64) ([]model.Post, error) {
	query := `SELECT p.id, p.thread_id, p.author_id, p.body, p.created_at, u.username
			  FROM posts p
			  JOIN users u ON u.id = p.author_id
			  WHERE p.thread_id = $1
			  ORDER BY p.created_at DESC, p.id ASC`

	rows, err := r.db.Query(ctx, query, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID, &post.ThreadID, &post.AuthorID, &post.Body, &post.CreatedAt, &post.AuthorUsername,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}
