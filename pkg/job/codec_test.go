package job_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incollege/backend/pkg/job"
)

func TestJobRoundTrip(t *testing.T) {
	j := job.Job{
		Title:       "Backend Engineer",
		Description: "Build and run the services behind the job board.",
		Employer:    "Initech",
		Location:    "Tampa, FL",
		Salary:      "85000",
		Poster:      "jdoe",
	}
	line, err := job.Codec{}.Encode(j)
	require.NoError(t, err)
	assert.Len(t, line, job.JobRecordWidth)
	assert.Equal(t, j, job.Codec{}.Decode(line))
}

func TestJobOptionalSalary(t *testing.T) {
	line, err := job.Codec{}.Encode(job.Job{Title: "x", Description: "y", Employer: "z", Location: "w", Poster: "p"})
	require.NoError(t, err)
	assert.Len(t, line, job.JobRecordWidth)
	assert.Equal(t, "", job.Codec{}.Decode(line).Salary)
}

func TestApplicationRoundTrip(t *testing.T) {
	a := job.Application{Username: "jdoe", Title: "Backend Engineer", Employer: "Initech", Location: "Tampa, FL"}
	line, err := job.ApplicationCodec{}.Encode(a)
	require.NoError(t, err)
	assert.Len(t, line, job.ApplicationRecordWidth)
	assert.Equal(t, a, job.ApplicationCodec{}.Decode(line))
}
