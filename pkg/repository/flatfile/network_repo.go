package flatfile

import (
	"context"

	"github.com/incollege/backend/pkg/flatfile"
	"github.com/incollege/backend/pkg/network"
	"github.com/incollege/backend/pkg/storage/flatdir"
)

// NetworkRepository implements network.Repository over the connections and
// pending-requests tables.
type NetworkRepository struct {
	connections *flatfile.Table[network.Connection]
	pending     *flatfile.Table[network.PendingRequest]
}

func NewNetworkRepository(store *flatdir.Store) *NetworkRepository {
	return &NetworkRepository{
		connections: flatfile.NewTable[network.Connection](store.Path(connectionsFile), network.ConnectionCodec{}),
		pending:     flatfile.NewTable[network.PendingRequest](store.Path(pendingFile), network.PendingCodec{}),
	}
}

func (r *NetworkRepository) Connections(ctx context.Context) ([]network.Connection, error) {
	return r.connections.ReadAll()
}

// AddConnection is idempotent: a pair already present in either ordering
// is left alone. Check and append share one critical section.
func (r *NetworkRepository) AddConnection(ctx context.Context, c network.Connection) error {
	return r.connections.Insert(func(existing []network.Connection) ([]network.Connection, error) {
		for _, e := range existing {
			if network.PairMatches(e, c.UserA, c.UserB) {
				return nil, nil
			}
		}
		return []network.Connection{c}, nil
	})
}

func (r *NetworkRepository) PendingRequests(ctx context.Context) ([]network.PendingRequest, error) {
	return r.pending.ReadAll()
}

func (r *NetworkRepository) AddPending(ctx context.Context, pr network.PendingRequest) error {
	return r.pending.Insert(func(existing []network.PendingRequest) ([]network.PendingRequest, error) {
		for _, e := range existing {
			if equalFoldTrim(e.Sender, pr.Sender) && equalFoldTrim(e.Recipient, pr.Recipient) {
				return nil, network.ErrRequestPending
			}
			if equalFoldTrim(e.Sender, pr.Recipient) && equalFoldTrim(e.Recipient, pr.Sender) {
				return nil, network.ErrRequestReceived
			}
		}
		return []network.PendingRequest{pr}, nil
	})
}

// RemovePending consumes the ordered (sender, recipient) pair by rewriting
// the table without it.
func (r *NetworkRepository) RemovePending(ctx context.Context, sender, recipient string) (bool, error) {
	removed, err := r.pending.RemoveWhere(func(pr network.PendingRequest) bool {
		return equalFoldTrim(pr.Sender, sender) && equalFoldTrim(pr.Recipient, recipient)
	})
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}
