package postgres

import (
	"context"
	"fmt"

	"github.com/avolkhin/forum-server/internal/model"
)

var _ model.ForumStore = (*ForumRepository)(nil)

type ForumRepository struct {
	db *Connection
}

func NewForumRepository(db *Connection) *ForumRepository {
	return &ForumRepository{
		db: db,
	}
}

func (r *ForumRepository) Create(ctx context.Context, forum model.Forum) (model.Forum, error) {
	query := `INSERT INTO forums (name, creator_id)
			  VALUES ($1, $2)
			  RETURNING id, name, creator_id, created_at`

	var savedForum model.Forum
	err := r.db.QueryRow(ctx, query, forum.Name, forum.CreatorID).Scan(
		&savedForum.ID, &savedForum.Name, &savedForum.CreatorID, &savedForum.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Forum{}, model.ErrConflict
		}
		return model.Forum{}, fmt.Errorf("failed to create forum: %w", err)
	}

	return savedForum, nil
}

func (r *ForumRepository) List(ctx context.Context, limit int) ([]model.Forum, error) {
	query := `SELECT f.id, f.name, f.creator_id, f.created_at, u.username
			  FROM forums f
			  JOIN users u ON u.id = f.creator_id
			  ORDER BY f.id ASC
			  LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list forums: %w", err)
	}
	defer rows.Close()

	var forums []model.Forum
	for rows.Next() {
		var forum model.Forum
		err := rows.Scan(
			&forum.ID, &forum.Name, &forum.CreatorID, &forum.CreatedAt, &forum.CreatorUsername,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan forum: %w", err)
		}
		forums = append(forums, forum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read forums: %w", err)
	}

	return forums, nil
}

func (r *ForumRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM forums WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check forum existence: %w", err)
	}

	return exists, nil
}
