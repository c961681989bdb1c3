package network

import (
	"context"
	"errors"
	"strings"

	"github.com/incollege/backend/pkg/profile"
)

var (
	ErrSelfConnection   = errors.New("cannot connect with yourself")
	ErrAlreadyConnected = errors.New("already connected with this user")
	ErrRequestPending   = errors.New("connection request already sent")
	ErrRequestReceived  = errors.New("this user has already sent you a connection request")
	ErrRequestNotFound  = errors.New("pending request not found")
)

// UseCase exposes the connection graph behavior.
type UseCase interface {
	// Request records sender asking to connect with recipient.
	Request(ctx context.Context, sender, recipient string) error
	// Pending lists requests addressed to username, with sender names.
	Pending(ctx context.Context, username string) ([]PendingView, error)
	// Respond consumes the pending request and, on accept, records the
	// connection. The request is consumed regardless of the outcome.
	Respond(ctx context.Context, sender, recipient string, accept bool) error
	// Members lists everyone connected to username with profile details.
	Members(ctx context.Context, username string) ([]Member, error)
	// AreConnected tests symmetric membership, case-insensitively.
	AreConnected(ctx context.Context, userA, userB string) (bool, error)
}

type service struct {
	repo     Repository
	profiles profile.Repository
}

func NewService(repo Repository, profiles profile.Repository) UseCase {
	return &service{repo: repo, profiles: profiles}
}

func (s *service) Request(ctx context.Context, sender, recipient string) error {
	sender = strings.TrimSpace(sender)
	recipient = strings.TrimSpace(recipient)
	if strings.EqualFold(sender, recipient) {
		return ErrSelfConnection
	}
	connected, err := s.AreConnected(ctx, sender, recipient)
	if err != nil {
		return err
	}
	if connected {
		return ErrAlreadyConnected
	}
	return s.repo.AddPending(ctx, PendingRequest{Sender: sender, Recipient: recipient})
}

func (s *service) Pending(ctx context.Context, username string) ([]PendingView, error) {
	username = strings.TrimSpace(username)
	pending, err := s.repo.PendingRequests(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]PendingRequest, 0, len(pending))
	for _, pr := range pending {
		if strings.EqualFold(pr.Recipient, username) {
			mine = append(mine, pr)
		}
	}
	if len(mine) == 0 {
		return []PendingView{}, nil
	}

	byUsername, err := s.profileIndex(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]PendingView, 0, len(mine))
	for _, pr := range mine {
		v := PendingView{SenderUsername: pr.Sender}
		if p, ok := byUsername[strings.ToLower(strings.TrimSpace(pr.Sender))]; ok {
			v.SenderFirstName = p.FirstName
			v.SenderLastName = p.LastName
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *service) Respond(ctx context.Context, sender, recipient string, accept bool) error {
	sender = strings.TrimSpace(sender)
	recipient = strings.TrimSpace(recipient)
	found, err := s.repo.RemovePending(ctx, sender, recipient)
	if err != nil {
		return err
	}
	if !found {
		return ErrRequestNotFound
	}
	if !accept {
		return nil
	}
	return s.repo.AddConnection(ctx, Connection{UserA: sender, UserB: recipient})
}

func (s *service) Members(ctx context.Context, username string) ([]Member, error) {
	username = strings.TrimSpace(username)
	connections, err := s.repo.Connections(ctx)
	if err != nil {
		return nil, err
	}
	// Distinct peers, in first-seen order.
	var peers []string
	seen := map[string]bool{}
	for _, c := range connections {
		var other string
		switch {
		case strings.EqualFold(c.UserA, username):
			other = strings.TrimSpace(c.UserB)
		case strings.EqualFold(c.UserB, username):
			other = strings.TrimSpace(c.UserA)
		default:
			continue
		}
		key := strings.ToLower(other)
		if !seen[key] {
			seen[key] = true
			peers = append(peers, other)
		}
	}
	if len(peers) == 0 {
		return []Member{}, nil
	}

	byUsername, err := s.profileIndex(ctx)
	if err != nil {
		return nil, err
	}
	members := make([]Member, 0, len(peers))
	for _, peer := range peers {
		m := Member{Username: peer}
		if p, ok := byUsername[strings.ToLower(peer)]; ok {
			m.FirstName = p.FirstName
			m.LastName = p.LastName
			m.School = p.School
			m.Major = p.Major
			m.GradYear = p.GradYear
		}
		members = append(members, m)
	}
	return members, nil
}

func (s *service) AreConnected(ctx context.Context, userA, userB string) (bool, error) {
	a := strings.TrimSpace(userA)
	b := strings.TrimSpace(userB)
	connections, err := s.repo.Connections(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range connections {
		if PairMatches(c, a, b) {
			return true, nil
		}
	}
	return false, nil
}

// PairMatches reports whether the connection links a and b in either
// ordering, case-insensitively.
func PairMatches(c Connection, a, b string) bool {
	u1 := strings.TrimSpace(c.UserA)
	u2 := strings.TrimSpace(c.UserB)
	return (strings.EqualFold(u1, a) && strings.EqualFold(u2, b)) ||
		(strings.EqualFold(u1, b) && strings.EqualFold(u2, a))
}

func (s *service) profileIndex(ctx context.Context) (map[string]profile.Profile, error) {
	all, err := s.profiles.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]profile.Profile, len(all))
	for _, p := range all {
		idx[strings.ToLower(strings.TrimSpace(p.Username))] = p
	}
	return idx, nil
}
