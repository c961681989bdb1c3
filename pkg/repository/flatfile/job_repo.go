package flatfile

import (
	"context"
	"strings"

	"github.com/incollege/backend/pkg/flatfile"
	"github.com/incollege/backend/pkg/job"
	"github.com/incollege/backend/pkg/storage/flatdir"
)

// JobRepository implements job.Repository over the jobs table.
type JobRepository struct {
	table *flatfile.Table[job.Job]
}

func NewJobRepository(store *flatdir.Store) *JobRepository {
	return &JobRepository{
		table: flatfile.NewTable[job.Job](store.Path(jobsFile), job.Codec{}),
	}
}

func (r *JobRepository) Append(ctx context.Context, j job.Job) error {
	return r.table.Append(j)
}

func (r *JobRepository) All(ctx context.Context) ([]job.Job, error) {
	return r.table.ReadAll()
}

// ApplicationRepository implements job.ApplicationRepository over the
// applications table.
type ApplicationRepository struct {
	table *flatfile.Table[job.Application]
}

func NewApplicationRepository(store *flatdir.Store) *ApplicationRepository {
	return &ApplicationRepository{
		table: flatfile.NewTable[job.Application](store.Path(applicationsFile), job.ApplicationCodec{}),
	}
}

// Create checks for an existing application for the same tuple and appends
// inside one critical section, so two concurrent applies cannot both pass
// the check.
func (r *ApplicationRepository) Create(ctx context.Context, a job.Application) error {
	return r.table.Insert(func(existing []job.Application) ([]job.Application, error) {
		for _, e := range existing {
			if equalFoldTrim(e.Username, a.Username) &&
				equalFoldTrim(e.Title, a.Title) &&
				equalFoldTrim(e.Employer, a.Employer) &&
				equalFoldTrim(e.Location, a.Location) {
				return nil, job.ErrAlreadyApplied
			}
		}
		return []job.Application{a}, nil
	})
}

// ListByUsername matches the trimmed username exactly, case-sensitively,
// as the source does for the my-applications view.
func (r *ApplicationRepository) ListByUsername(ctx context.Context, username string) ([]job.Application, error) {
	all, err := r.table.ReadAll()
	if err != nil {
		return nil, err
	}
	mine := make([]job.Application, 0, len(all))
	for _, a := range all {
		if strings.TrimSpace(a.Username) == strings.TrimSpace(username) {
			mine = append(mine, a)
		}
	}
	return mine, nil
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
