package message

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrEmptyText    = errors.New("message text cannot be empty")
	ErrSelfMessage  = errors.New("cannot send a message to yourself")
	ErrNotConnected = errors.New("not connected with this user")
)

// ConnectionChecker answers whether two users are connected. Implemented
// by the network service; messaging only needs this one question.
type ConnectionChecker interface {
	AreConnected(ctx context.Context, userA, userB string) (bool, error)
}

// UseCase exposes messaging behavior.
type UseCase interface {
	Send(ctx context.Context, sender, recipient, text string) error
	// Inbox lists messages received by username, oldest first.
	Inbox(ctx context.Context, username string) ([]Message, error)
	// Sent lists messages sent by username, newest first.
	Sent(ctx context.Context, username string) ([]Message, error)
}

type service struct {
	repo        Repository
	connections ConnectionChecker
	now         func() time.Time
}

func NewService(repo Repository, connections ConnectionChecker) UseCase {
	return &service{repo: repo, connections: connections, now: time.Now}
}

func (s *service) Send(ctx context.Context, sender, recipient, text string) error {
	sender = strings.TrimSpace(sender)
	recipient = strings.TrimSpace(recipient)
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	if strings.EqualFold(sender, recipient) {
		return ErrSelfMessage
	}
	connected, err := s.connections.AreConnected(ctx, sender, recipient)
	if err != nil {
		return err
	}
	if !connected {
		return ErrNotConnected
	}
	return s.repo.Append(ctx, Outgoing{
		Sender:    sender,
		Recipient: recipient,
		Timestamp: CompactTimestamp(s.now()),
		Segments:  SplitText(text),
	})
}

func (s *service) Inbox(ctx context.Context, username string) ([]Message, error) {
	messages, err := s.forUser(ctx, username, func(c Chunk) string { return c.Recipient })
	if err != nil {
		return nil, err
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages, nil
}

func (s *service) Sent(ctx context.Context, username string) ([]Message, error) {
	messages, err := s.forUser(ctx, username, func(c Chunk) string { return c.Sender })
	if err != nil {
		return nil, err
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID > messages[j].ID })
	return messages, nil
}

func (s *service) forUser(ctx context.Context, username string, party func(Chunk) string) ([]Message, error) {
	username = strings.TrimSpace(username)
	chunks, err := s.repo.Chunks(ctx)
	if err != nil {
		return nil, err
	}
	mine := chunks[:0:0]
	for _, c := range chunks {
		if strings.EqualFold(strings.TrimSpace(party(c)), username) {
			mine = append(mine, c)
		}
	}
	return Reassemble(mine), nil
}
