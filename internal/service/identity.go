package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhin/forum-server/internal/logger"
	"github.com/avolkhin/forum-server/internal/model"
)

// Identity owns user records and credential checks. Passwords never
// leave this service unhashed.
type Identity struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

func NewIdentity(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *Identity {
	return &Identity{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// Register creates a new user. A taken username is reported as
// model.ErrConflict; the uniqueness check is the database constraint,
// not a separate lookup.
func (s *Identity) Register(ctx context.Context, username, password string) (model.User, error) {
	s.logger.Debug("Identity service: registering user",
		"username", username)

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("Identity service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userStore.Create(ctx, model.User{
		Username:     username,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, model.ErrConflict) {
		s.logger.Info("Identity service: username already taken",
			"username", username)
		return model.User{}, model.ErrConflict
	}
	if err != nil {
		s.logger.Error("Identity service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Identity service: user registered",
		"username", username,
		"user_id", user.ID)

	return user, nil
}

// Authenticate validates presented credentials and derives the acting
// identity. An unknown username and a wrong password are
// indistinguishable to the caller.
func (s *Identity) Authenticate(ctx context.Context, username, password string) (model.Identity, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.Identity{}, model.ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error("Identity service: failed to get user",
			"username", username,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return model.Identity{}, model.ErrInvalidCredentials
	}

	return model.Identity{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

// Update overwrites username and password of the target user. Only the
// user itself may do so; renaming onto a taken username is rejected as
// model.ErrConflict.
func (s *Identity) Update(ctx context.Context, username, newUsername, newPassword string, acting model.Identity) (model.User, error) {
	s.logger.Debug("Identity service: updating user",
		"username", username,
		"acting", acting.Username)

	if _, err := s.userStore.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		s.logger.Error("Identity service: failed to get user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if acting.Username != username {
		s.logger.Info("Identity service: update denied",
			"username", username,
			"acting", acting.Username)
		return model.User{}, model.ErrForbidden
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Error("Identity service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userStore.Update(ctx, username, newUsername, passwordHash)
	if errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrNotFound) {
		return model.User{}, err
	}
	if err != nil {
		s.logger.Error("Identity service: failed to update user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("Identity service: user updated",
		"username", username,
		"new_username", user.Username,
		"user_id", user.ID)

	return user, nil
}
