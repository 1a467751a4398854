package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhin/forum-server/internal/logger"
	"github.com/avolkhin/forum-server/internal/model"
)

const maxPageSize = 100

// Forum owns the content hierarchy: forums, threads, posts, and the
// denormalized thread summaries.
type Forum struct {
	forumStore  model.ForumStore
	threadStore model.ThreadStore
	postStore   model.PostStore
	logger      *logger.Logger
	pageSize    int
}

func NewForum(
	forumStore model.ForumStore,
	threadStore model.ThreadStore,
	postStore model.PostStore,
	logger *logger.Logger,
	pageSize int,
) *Forum {
	return &Forum{
		forumStore:  forumStore,
		threadStore: threadStore,
		postStore:   postStore,
		logger:      logger,
		pageSize:    pageSize,
	}
}

// CreateForum inserts a forum owned by the acting identity. A taken
// name is reported as model.ErrConflict.
func (s *Forum) CreateForum(ctx context.Context, name string, identity model.Identity) (model.Forum, error) {
	s.logger.Debug("Forum service: creating forum",
		"name", name,
		"creator", identity.Username)

	forum, err := s.forumStore.Create(ctx, model.Forum{
		Name:      name,
		CreatorID: identity.UserID,
	})
	if errors.Is(err, model.ErrConflict) {
		s.logger.Info("Forum service: forum name already taken",
			"name", name)
		return model.Forum{}, model.ErrConflict
	}
	if err != nil {
		s.logger.Error("Forum service: failed to create forum",
			"name", name,
			"error", err.Error())
		return model.Forum{}, fmt.Errorf("failed to create forum: %w", err)
	}

	s.logger.Info("Forum service: forum created",
		"name", name,
		"forum_id", forum.ID)

	return forum, nil
}

// ListForums returns up to limit forums in insertion order, joined with
// their creator usernames. A non-positive limit falls back to the
// configured page size.
func (s *Forum) ListForums(ctx context.Context, limit int) ([]model.Forum, error) {
	if limit <= 0 {
		limit = s.pageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	forums, err := s.forumStore.List(ctx, limit)
	if err != nil {
		s.logger.Error("Forum service: failed to list forums",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list forums: %w", err)
	}

	return forums, nil
}

// CreateThread creates a thread and its opening post as one unit. The
// store guarantees both rows commit together or not at all.
func (s *Forum) CreateThread(ctx context.Context, forumID int64, title, body string, identity model.Identity) (model.Thread, error) {
	s.logger.Debug("Forum service: creating thread",
		"forum_id", forumID,
		"title", title,
		"author", identity.Username)

	thread, err := s.threadStore.CreateWithOpeningPost(ctx,
		model.Thread{
			ForumID: forumID,
			Title:   title,
		},
		model.Post{
			AuthorID: identity.UserID,
			Body:     body,
		})
	if errors.Is(err, model.ErrForumNotFound) {
		s.logger.Info("Forum service: forum not found",
			"forum_id", forumID)
		return model.Thread{}, model.ErrForumNotFound
	}
	if err != nil {
		s.logger.Error("Forum service: failed to create thread",
			"forum_id", forumID,
			"error", err.Error())
		return model.Thread{}, fmt.Errorf("failed to create thread: %w", err)
	}

	s.logger.Info("Forum service: thread created",
		"forum_id", forumID,
		"thread_id", thread.ID)

	return thread, nil
}

// CreatePost adds a post to an existing thread of a forum.
func (s *Forum) CreatePost(ctx context.Context, forumID, threadID int64, body string, identity model.Identity) (model.Post, error) {
	s.logger.Debug("Forum service: creating post",
		"forum_id", forumID,
		"thread_id", threadID,
		"author", identity.Username)

	exists, err := s.threadStore.ExistsInForum(ctx, forumID, threadID)
	if err != nil {
		s.logger.Error("Forum service: failed to check thread",
			"forum_id", forumID,
			"thread_id", threadID,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		s.logger.Info("Forum service: thread not found",
			"forum_id", forumID,
			"thread_id", threadID)
		return model.Post{}, model.ErrThreadNotFound
	}

	post, err := s.postStore.Create(ctx, model.Post{
		ThreadID: threadID,
		AuthorID: identity.UserID,
		Body:     body,
	})
	if err != nil {
		s.logger.Error("Forum service: failed to create post",
			"thread_id", threadID,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Forum service: post created",
		"thread_id", threadID,
		"post_id", post.ID)

	return post, nil
}

// ListPosts returns all posts of a thread, most recent first.
func (s *Forum) ListPosts(ctx context.Context, forumID, threadID int64) ([]model.Post, error) {
	exists, err := s.threadStore.ExistsInForum(ctx, forumID, threadID)
	if err != nil {
		s.logger.Error("Forum service: failed to check thread",
			"forum_id", forumID,
			"thread_id", threadID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return nil, model.ErrThreadNotFound
	}

	posts, err := s.postStore.ListByThread(ctx, threadID)
	if err != nil {
		s.logger.Error("Forum service: failed to list posts",
			"thread_id", threadID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// ListThreads returns the thread summaries of a forum.
func (s *Forum) ListThreads(ctx context.Context, forumID int64) ([]model.ThreadSummary, error) {
	exists, err := s.forumStore.Exists(ctx, forumID)
	if err != nil {
		s.logger.Error("Forum service: failed to check forum",
			"forum_id", forumID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to check forum: %w", err)
	}
	if !exists {
		return nil, model.ErrForumNotFound
	}

	threads, err := s.threadStore.ListByForum(ctx, forumID)
	if err != nil {
		s.logger.Error("Forum service: failed to list threads",
			"forum_id", forumID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}

	return threads, nil
}
