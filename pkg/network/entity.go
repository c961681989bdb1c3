package network

import "context"

// Connection is an unordered pair of mutually connected usernames. (A,B)
// and (B,A) represent the same fact, so lookups test both orderings.
type Connection struct {
	UserA string `json:"userA"`
	UserB string `json:"userB"`
}

// PendingRequest is an ordered pair: Sender asked to connect with
// Recipient. It is consumed when responded to, whatever the outcome.
type PendingRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
}

// PendingView is one incoming request enriched with the sender's name.
type PendingView struct {
	SenderUsername  string `json:"senderUsername"`
	SenderFirstName string `json:"senderFirstName"`
	SenderLastName  string `json:"senderLastName"`
}

// Member is one connected user with profile summary fields for display.
type Member struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	School    string `json:"school"`
	Major     string `json:"major"`
	GradYear  string `json:"gradYear"`
}

// Repository is the persistence port for connections and pending requests.
type Repository interface {
	Connections(ctx context.Context) ([]Connection, error)
	// AddConnection appends c unless the pair is already present in either
	// ordering (case-insensitive); the check and append are atomic.
	AddConnection(ctx context.Context, c Connection) error
	PendingRequests(ctx context.Context) ([]PendingRequest, error)
	// AddPending appends pr after checking, atomically, that neither the
	// same ordered pair (ErrRequestPending) nor its reverse
	// (ErrRequestReceived) is already recorded.
	AddPending(ctx context.Context, pr PendingRequest) error
	// RemovePending consumes the ordered pair, reporting whether it existed.
	RemovePending(ctx context.Context, sender, recipient string) (bool, error)
}
