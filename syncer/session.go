package syncer

import (
	"github.com/critiqhq/critic/critiqapi"
	"github.com/critiqhq/critic/identity"
	"github.com/critiqhq/critic/shelf"
	"github.com/pkg/errors"
)

// Login exchanges credentials for a session. On success the session
// is persisted to the identity file before the store transitions to
// authenticated; on failure the server-supplied message lands in the
// session slice and we stay anonymous.
func (s *Syncer) Login(email string, password string) error {
	params := critiqapi.LoginParams{
		Email:    email,
		Password: password,
	}
	err := params.Validate()
	if err != nil {
		s.store.Dispatch(shelf.SessionFailed{Err: err.Error()})
		return errors.WithStack(err)
	}

	s.store.Dispatch(shelf.SessionAuthenticating{})

	res, err := s.newClient("").Login(params)
	if err != nil {
		s.store.Dispatch(shelf.SessionFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	s.establish(res)
	return nil
}

// Register creates an account and logs it in, in one go
func (s *Syncer) Register(name string, email string, password string) error {
	params := critiqapi.RegisterParams{
		Name:     name,
		Email:    email,
		Password: password,
	}
	err := params.Validate()
	if err != nil {
		s.store.Dispatch(shelf.SessionFailed{Err: err.Error()})
		return errors.WithStack(err)
	}

	s.store.Dispatch(shelf.SessionAuthenticating{})

	res, err := s.newClient("").Register(params)
	if err != nil {
		s.store.Dispatch(shelf.SessionFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	s.establish(res)
	return nil
}

func (s *Syncer) establish(res *critiqapi.AuthResponse) {
	err := s.identity.Save(&identity.Session{
		User:  res.User,
		Token: res.Token,
	})
	if err != nil {
		// the in-memory session still works for this run
		s.logf("Could not persist session: %+v", err)
	}

	s.store.Dispatch(shelf.SessionEstablished{
		User:  res.User,
		Token: res.Token,
	})
}

// Logout notifies the server (best-effort), then unconditionally
// clears the local session and the identity file. Local logout
// always succeeds, reachable server or not.
func (s *Syncer) Logout() error {
	sess := s.store.State().Session
	if sess.Token != "" {
		err := s.newClient(sess.Token).Logout()
		if err != nil {
			s.logf("Logout request failed, clearing local session anyway: %s", errString(err))
		}
	}

	err := s.identity.Clear()
	if err != nil {
		s.logf("Could not clear session file: %+v", err)
	}

	s.store.Dispatch(shelf.SessionCleared{})
	return nil
}

// Rehydrate initializes the session from the identity file at
// process start. No network call is made: a stale token is
// discovered on the first authenticated request that fails.
func (s *Syncer) Rehydrate() error {
	sess, err := s.identity.Load()
	if err != nil {
		// corrupt session file: start anonymous
		s.logf("Could not rehydrate session: %+v", err)
		return nil
	}
	if sess == nil {
		return nil
	}

	s.store.Dispatch(shelf.SessionEstablished{
		User:  sess.User,
		Token: sess.Token,
	})
	return nil
}
