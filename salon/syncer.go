package salon

import (
	"github.com/pkg/errors"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/identity"
	"github.com/critiqhq/critic/shelf"
	"github.com/critiqhq/critic/syncer"
)

// IdentityStore builds the session store for the configured path
func (ctx *Context) IdentityStore() *identity.Store {
	return identity.NewStore(ctx.Identity)
}

// NewSyncer wires up a fresh store and orchestrator, rehydrating any
// saved session. Commands that talk to the server start here.
func (ctx *Context) NewSyncer() (*syncer.Syncer, error) {
	store := shelf.NewStore()
	s := syncer.New(store, ctx.NewClient, ctx.IdentityStore())
	s.Logf = comm.Debugf

	err := s.Rehydrate()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return s, nil
}

// HasSavedSession returns true when an identity file (or token
// environment variable) is present
func (ctx *Context) HasSavedSession() bool {
	return ctx.IdentityStore().HasSaved()
}
