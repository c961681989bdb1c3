package job

import "context"

// Job is one posted job or internship. Jobs are append-only: never edited
// or removed. The (title, employer, location) tuple acts as the natural
// key for application matching, although duplicates are not prevented at
// posting time.
type Job struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Employer    string `json:"employer"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Poster      string `json:"poster"`
}

// Application records that a user applied to a job. Immutable once
// created; at most one per (username, title, employer, location) tuple.
type Application struct {
	Username string `json:"username"`
	Title    string `json:"title"`
	Employer string `json:"employer"`
	Location string `json:"location"`
}

// Repository is the persistence port for jobs.
type Repository interface {
	Append(ctx context.Context, j Job) error
	All(ctx context.Context) ([]Job, error)
}

// ApplicationRepository is the persistence port for applications. Create
// must perform its duplicate check and the append as one atomic step.
type ApplicationRepository interface {
	// Create appends a, or returns ErrAlreadyApplied when the same tuple
	// (compared case-insensitively) is already recorded.
	Create(ctx context.Context, a Application) error
	ListByUsername(ctx context.Context, username string) ([]Application, error)
}
