package job_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incollege/backend/pkg/job"
	fsrepo "github.com/incollege/backend/pkg/repository/flatfile"
	"github.com/incollege/backend/pkg/storage/flatdir"
)

func newJobService(t *testing.T) job.UseCase {
	t.Helper()
	store, err := flatdir.Open(t.TempDir())
	require.NoError(t, err)
	return job.NewService(fsrepo.NewJobRepository(store), fsrepo.NewApplicationRepository(store))
}

func TestPostAndSearch(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	_, err := svc.Post(ctx, job.Job{Title: "Backend Engineer", Description: "Go services", Employer: "Initech", Location: "Tampa", Poster: "jdoe"})
	require.NoError(t, err)
	_, err = svc.Post(ctx, job.Job{Title: "Data Analyst", Description: "Dashboards", Employer: "Globex", Location: "Remote", Poster: "jdoe"})
	require.NoError(t, err)

	all, err := svc.Search(ctx, "", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// contains-filter, case-insensitive
	matched, err := svc.Search(ctx, "backend", "", "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Initech", matched[0].Employer)

	matched, err = svc.Search(ctx, "", "globex", "remote")
	require.NoError(t, err)
	assert.Len(t, matched, 1)
}

func TestPostValidation(t *testing.T) {
	svc := newJobService(t)
	_, err := svc.Post(context.Background(), job.Job{Title: "No description", Employer: "x", Location: "y", Poster: "p"})
	var ve job.ErrValidation
	assert.ErrorAs(t, err, &ve)
}

func TestApply(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	_, err := svc.Post(ctx, job.Job{Title: "Backend Engineer", Description: "Go services", Employer: "Initech", Location: "Tampa", Poster: "jdoe"})
	require.NoError(t, err)

	app := job.Application{Username: "asmith", Title: "Backend Engineer", Employer: "Initech", Location: "Tampa"}
	require.NoError(t, svc.Apply(ctx, app))

	apps, err := svc.ApplicationsFor(ctx, "asmith")
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestApplyUnknownJob(t *testing.T) {
	svc := newJobService(t)
	err := svc.Apply(context.Background(), job.Application{Username: "asmith", Title: "Ghost", Employer: "Nobody", Location: "Nowhere"})
	assert.ErrorIs(t, err, job.ErrJobNotFound)
}

func TestApplyTwiceRejected(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	_, err := svc.Post(ctx, job.Job{Title: "Backend Engineer", Description: "Go services", Employer: "Initech", Location: "Tampa", Poster: "jdoe"})
	require.NoError(t, err)

	app := job.Application{Username: "asmith", Title: "Backend Engineer", Employer: "Initech", Location: "Tampa"}
	require.NoError(t, svc.Apply(ctx, app))
	assert.ErrorIs(t, svc.Apply(ctx, app), job.ErrAlreadyApplied)

	// The tuple comparison is case-insensitive.
	app.Title = "BACKEND ENGINEER"
	assert.ErrorIs(t, svc.Apply(ctx, app), job.ErrAlreadyApplied)

	apps, err := svc.ApplicationsFor(ctx, "asmith")
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}
