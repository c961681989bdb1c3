package network_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incollege/backend/pkg/network"
	"github.com/incollege/backend/pkg/profile"
	fsrepo "github.com/incollege/backend/pkg/repository/flatfile"
	"github.com/incollege/backend/pkg/storage/flatdir"
)

func newNetworkService(t *testing.T) (network.UseCase, profile.Repository) {
	t.Helper()
	store, err := flatdir.Open(t.TempDir())
	require.NoError(t, err)
	profiles := fsrepo.NewProfileRepository(store)
	return network.NewService(fsrepo.NewNetworkRepository(store), profiles), profiles
}

func TestRequestAndRespondAccept(t *testing.T) {
	svc, _ := newNetworkService(t)
	ctx := context.Background()

	require.NoError(t, svc.Request(ctx, "jdoe", "asmith"))

	pending, err := svc.Pending(ctx, "asmith")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "jdoe", pending[0].SenderUsername)

	require.NoError(t, svc.Respond(ctx, "jdoe", "asmith", true))

	// The request is consumed and the connection is visible from both sides.
	pending, err = svc.Pending(ctx, "asmith")
	require.NoError(t, err)
	assert.Empty(t, pending)

	for _, pair := range [][2]string{{"jdoe", "asmith"}, {"asmith", "jdoe"}, {"JDOE", "Asmith"}} {
		connected, err := svc.AreConnected(ctx, pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, connected, "expected %s and %s connected", pair[0], pair[1])
	}
}

func TestRespondDeclineConsumesRequest(t *testing.T) {
	svc, _ := newNetworkService(t)
	ctx := context.Background()

	require.NoError(t, svc.Request(ctx, "jdoe", "asmith"))
	require.NoError(t, svc.Respond(ctx, "jdoe", "asmith", false))

	connected, err := svc.AreConnected(ctx, "jdoe", "asmith")
	require.NoError(t, err)
	assert.False(t, connected)

	// Gone either way: responding again finds nothing.
	assert.ErrorIs(t, svc.Respond(ctx, "jdoe", "asmith", false), network.ErrRequestNotFound)
}

func TestRequestSelf(t *testing.T) {
	svc, _ := newNetworkService(t)
	assert.ErrorIs(t, svc.Request(context.Background(), "jdoe", "jdoe"), network.ErrSelfConnection)
	assert.ErrorIs(t, svc.Request(context.Background(), "jdoe", "JDOE"), network.ErrSelfConnection)
}

func TestRequestDuplicates(t *testing.T) {
	svc, _ := newNetworkService(t)
	ctx := context.Background()

	require.NoError(t, svc.Request(ctx, "jdoe", "asmith"))
	assert.ErrorIs(t, svc.Request(ctx, "jdoe", "asmith"), network.ErrRequestPending)
	assert.ErrorIs(t, svc.Request(ctx, "JDOE", "ASMITH"), network.ErrRequestPending)

	// The reverse direction is also blocked while the request is open.
	assert.ErrorIs(t, svc.Request(ctx, "asmith", "jdoe"), network.ErrRequestReceived)

	require.NoError(t, svc.Respond(ctx, "jdoe", "asmith", true))
	assert.ErrorIs(t, svc.Request(ctx, "jdoe", "asmith"), network.ErrAlreadyConnected)
	assert.ErrorIs(t, svc.Request(ctx, "asmith", "jdoe"), network.ErrAlreadyConnected)
}

func TestMembersIncludesProfileDetails(t *testing.T) {
	svc, profiles := newNetworkService(t)
	ctx := context.Background()

	_, err := profiles.Upsert(ctx, profile.Profile{
		Username: "asmith", FirstName: "Alice", LastName: "Smith",
		School: "USF", Major: "CS", GradYear: "2026",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Request(ctx, "jdoe", "asmith"))
	require.NoError(t, svc.Respond(ctx, "jdoe", "asmith", true))
	require.NoError(t, svc.Request(ctx, "bnguyen", "jdoe"))
	require.NoError(t, svc.Respond(ctx, "bnguyen", "jdoe", true))

	members, err := svc.Members(ctx, "jdoe")
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, "asmith", members[0].Username)
	assert.Equal(t, "Alice", members[0].FirstName)
	assert.Equal(t, "USF", members[0].School)

	// Peer without a profile still appears, with blank details.
	assert.Equal(t, "bnguyen", members[1].Username)
	assert.Empty(t, members[1].FirstName)
}

func TestPairMatches(t *testing.T) {
	c := network.Connection{UserA: "jdoe", UserB: "asmith"}
	assert.True(t, network.PairMatches(c, "jdoe", "asmith"))
	assert.True(t, network.PairMatches(c, "asmith", "jdoe"))
	assert.True(t, network.PairMatches(c, "ASMITH", "JDoe"))
	assert.False(t, network.PairMatches(c, "jdoe", "bnguyen"))
}
