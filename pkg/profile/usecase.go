package profile

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("profile not found")

// ErrValidation is a simple request-validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// UseCase exposes profile application behavior.
type UseCase interface {
	Get(ctx context.Context, username string) (Profile, error)
	// Save upserts the profile for its username and reports creation.
	Save(ctx context.Context, p Profile) (created bool, err error)
	FindByName(ctx context.Context, first, last string) (Profile, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Get(ctx context.Context, username string) (Profile, error) {
	return s.repo.Get(ctx, username)
}

func (s *service) Save(ctx context.Context, p Profile) (bool, error) {
	if strings.TrimSpace(p.Username) == "" {
		return false, ErrValidation("username is required")
	}
	return s.repo.Upsert(ctx, p)
}

func (s *service) FindByName(ctx context.Context, first, last string) (Profile, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first == "" || last == "" {
		return Profile{}, ErrValidation("first and last name are required")
	}
	return s.repo.FindByName(ctx, first, last)
}
