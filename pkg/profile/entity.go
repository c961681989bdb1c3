package profile

import "context"

// Profile is one user's page. A stored profile always carries exactly
// three experience and three education slots; unused slots are blank, and
// the UI decides how many to treat as present.
type Profile struct {
	Username    string       `json:"username"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	School      string       `json:"school"`
	Major       string       `json:"major"`
	GradYear    string       `json:"gradYear"`
	About       string       `json:"about"`
	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Dates       string `json:"dates"`
	Description string `json:"description"`
}

type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Years  string `json:"years"`
}

// Repository is the persistence port for profiles.
type Repository interface {
	// Get matches the stored username case-sensitively. ErrNotFound when absent.
	Get(ctx context.Context, username string) (Profile, error)
	// Upsert replaces the record for the profile's username in place, or
	// appends when it is new; reports whether a new record was created.
	Upsert(ctx context.Context, p Profile) (created bool, err error)
	// FindByName matches first and last name case-insensitively.
	FindByName(ctx context.Context, first, last string) (Profile, error)
	All(ctx context.Context) ([]Profile, error)
}
