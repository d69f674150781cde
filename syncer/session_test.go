package syncer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/critiqhq/critic/critiqapi"
	"github.com/critiqhq/critic/identity"
	"github.com/critiqhq/critic/shelf"
)

func Test_LoginSuccess(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.syncer.Login("amos@critiq.games", "hunter22"))

	sess := h.syncer.Store().State().Session
	assert.True(t, sess.Authenticated)
	assert.EqualValues(t, "fake-token", sess.Token)
	assert.EqualValues(t, "amos", sess.User.Name)

	// the session was persisted before the store transitioned
	saved, err := h.identity.Load()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.EqualValues(t, "fake-token", saved.Token)
	assert.EqualValues(t, "amos", saved.User.Name)
}

func Test_LoginBadCredentials(t *testing.T) {
	h := newHarness(t)

	err := h.syncer.Login("amos@critiq.games", "wrong")
	require.Error(t, err)

	sess := h.syncer.Store().State().Session
	assert.False(t, sess.Authenticated)
	assert.False(t, sess.Authenticating)
	// the server-supplied message, not the fallback
	assert.EqualValues(t, "Invalid credentials", sess.Err)

	// nothing was persisted
	saved, err := h.identity.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func Test_LoginInvalidParams(t *testing.T) {
	h := newHarness(t)

	err := h.syncer.Login("not-an-email", "hunter22")
	require.Error(t, err)
	assert.NotEmpty(t, h.syncer.Store().State().Session.Err)
}

func Test_LogoutAlwaysSucceedsLocally(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.syncer.Login("amos@critiq.games", "hunter22"))

	// server down: local logout still succeeds
	h.server.Close()

	require.NoError(t, h.syncer.Logout())
	assert.False(t, h.syncer.Store().State().Session.Authenticated)

	saved, err := h.identity.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func Test_RehydrateWithoutNetwork(t *testing.T) {
	idStore := identity.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, idStore.Save(&identity.Session{
		User:  &critiqapi.User{ID: 3, Name: "ada"},
		Token: "saved-token",
	}))

	// any network call would panic: rehydration must never make one
	newClient := func(token string) *critiqapi.Client {
		panic("rehydration must not build a client")
	}

	s := New(shelf.NewStore(), newClient, idStore)
	require.NoError(t, s.Rehydrate())

	sess := s.Store().State().Session
	assert.True(t, sess.Authenticated)
	assert.EqualValues(t, "saved-token", sess.Token)
	assert.EqualValues(t, "ada", sess.User.Name)
}

func Test_RehydrateNothingSaved(t *testing.T) {
	idStore := identity.NewStore(filepath.Join(t.TempDir(), "session.json"))

	s := New(shelf.NewStore(), nil, idStore)
	require.NoError(t, s.Rehydrate())
	assert.False(t, s.Store().State().Session.Authenticated)
}
