package service

import (
	"context"
	"strings"

	"github.com/hotross/HomeMaintenanceTracker/internal/models"
	"github.com/hotross/HomeMaintenanceTracker/internal/repository"
)

// ErrUsernameTaken is returned on register or rename when the username is
// already in use. Usernames are case sensitive; "Anna" and "anna" are two
// different people.
var ErrUsernameTaken = &ValidationError{Field: "username", Reason: "username already taken"}

type UserService struct {
	store repository.Store
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, validationErr("username", "username is required")
	}
	if len(password) < 6 {
		return nil, validationErr("password", "password must be at least 6 characters")
	}
	existing, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}
	user := &models.User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.store.InsertUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user when the credentials match, nil otherwise.
// Callers treat an unknown username and a wrong password identically.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CheckPassword(password) {
		return nil, nil
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Rename changes the account's username. Completion records on tasks keep
// the name that was current when they were written.
func (s *UserService) Rename(ctx context.Context, userID uint, username string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, validationErr("username", "username is required")
	}
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Username == username {
		return user, nil
	}
	existing, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}
	user.Username = username
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
