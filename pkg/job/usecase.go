package job

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrAlreadyApplied = errors.New("already applied to this job")
)

// ErrValidation is a simple request-validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// UseCase exposes job board application behavior.
type UseCase interface {
	Post(ctx context.Context, j Job) (Job, error)
	// Search filters case-insensitively by substring on each non-empty term.
	Search(ctx context.Context, title, employer, location string) ([]Job, error)
	// Apply verifies the job exists by its (title, employer, location)
	// tuple and records the application once per user.
	Apply(ctx context.Context, a Application) error
	ApplicationsFor(ctx context.Context, username string) ([]Application, error)
}

type service struct {
	jobs Repository
	apps ApplicationRepository
}

func NewService(jobs Repository, apps ApplicationRepository) UseCase {
	return &service{jobs: jobs, apps: apps}
}

func (s *service) Post(ctx context.Context, j Job) (Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	j.Description = strings.TrimSpace(j.Description)
	j.Employer = strings.TrimSpace(j.Employer)
	j.Location = strings.TrimSpace(j.Location)
	j.Salary = strings.TrimSpace(j.Salary)
	j.Poster = strings.TrimSpace(j.Poster)
	if j.Title == "" || j.Description == "" || j.Employer == "" || j.Location == "" || j.Poster == "" {
		return Job{}, ErrValidation("title, description, employer, and location are required")
	}
	if err := s.jobs.Append(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) Search(ctx context.Context, title, employer, location string) ([]Job, error) {
	all, err := s.jobs.All(ctx)
	if err != nil {
		return nil, err
	}
	title = strings.ToLower(strings.TrimSpace(title))
	employer = strings.ToLower(strings.TrimSpace(employer))
	location = strings.ToLower(strings.TrimSpace(location))
	matched := make([]Job, 0, len(all))
	for _, j := range all {
		if title != "" && !strings.Contains(strings.ToLower(j.Title), title) {
			continue
		}
		if employer != "" && !strings.Contains(strings.ToLower(j.Employer), employer) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			continue
		}
		matched = append(matched, j)
	}
	return matched, nil
}

func (s *service) Apply(ctx context.Context, a Application) error {
	a.Username = strings.TrimSpace(a.Username)
	a.Title = strings.TrimSpace(a.Title)
	a.Employer = strings.TrimSpace(a.Employer)
	a.Location = strings.TrimSpace(a.Location)
	if a.Username == "" || a.Title == "" || a.Employer == "" || a.Location == "" {
		return ErrValidation("username, title, employer, and location are required")
	}

	jobs, err := s.jobs.All(ctx)
	if err != nil {
		return err
	}
	exists := false
	for _, j := range jobs {
		if equalFoldTrim(j.Title, a.Title) &&
			equalFoldTrim(j.Employer, a.Employer) &&
			equalFoldTrim(j.Location, a.Location) {
			exists = true
			break
		}
	}
	if !exists {
		return ErrJobNotFound
	}
	return s.apps.Create(ctx, a)
}

func (s *service) ApplicationsFor(ctx context.Context, username string) ([]Application, error) {
	return s.apps.ListByUsername(ctx, username)
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
