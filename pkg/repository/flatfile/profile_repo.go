// Package flatfile implements the domain repository ports over fixed-width
// flat-file tables, one file per record type, in the layout the original
// COBOL batch program defined.
package flatfile

import (
	"context"
	"strings"

	"github.com/incollege/backend/pkg/flatfile"
	"github.com/incollege/backend/pkg/profile"
	"github.com/incollege/backend/pkg/storage/flatdir"
)

// Table file names carried over from the legacy system; the executable
// reads the same files, so they are part of the external contract.
const (
	profilesFile     = "InCollege-Profiles.txt"
	jobsFile         = "InCollege-Jobs.txt"
	applicationsFile = "InCollege-Applications.txt"
	connectionsFile  = "InCollege-Connections.txt"
	pendingFile      = "InCollege-PendingRequests.txt"
	messagesFile     = "InCollege-Messages.txt"
)

// ProfileRepository implements profile.Repository over the profile table.
type ProfileRepository struct {
	table *flatfile.Table[profile.Profile]
}

func NewProfileRepository(store *flatdir.Store) *ProfileRepository {
	return &ProfileRepository{
		table: flatfile.NewTable[profile.Profile](store.Path(profilesFile), profile.Codec{}),
	}
}

// Get matches the stored username case-sensitively, as the legacy reader
// does. Case-insensitive lookups exist only where the source had them.
func (r *ProfileRepository) Get(ctx context.Context, username string) (profile.Profile, error) {
	p, ok, err := r.table.FindFirst(func(p profile.Profile) bool {
		return strings.TrimSpace(p.Username) == username
	})
	if err != nil {
		return profile.Profile{}, err
	}
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p profile.Profile) (bool, error) {
	username := p.Username
	return r.table.Upsert(func(existing profile.Profile) bool {
		return strings.TrimSpace(existing.Username) == username
	}, p)
}

func (r *ProfileRepository) FindByName(ctx context.Context, first, last string) (profile.Profile, error) {
	p, ok, err := r.table.FindFirst(func(p profile.Profile) bool {
		return strings.EqualFold(p.FirstName, first) && strings.EqualFold(p.LastName, last)
	})
	if err != nil {
		return profile.Profile{}, err
	}
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *ProfileRepository) All(ctx context.Context) ([]profile.Profile, error) {
	return r.table.ReadAll()
}
