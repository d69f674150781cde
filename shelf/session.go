package shelf

import "github.com/critiqhq/critic/critiqapi"

// Session is the process-wide auth state. The machine is:
//
//	anonymous → authenticating → authenticated
//	                           ↘ anonymous (with error)
//	authenticated → anonymous (logout)
type Session struct {
	User  *critiqapi.User
	Token string

	Authenticated  bool
	Authenticating bool
	Err            string
}

type SessionAuthenticating struct{}

// SessionEstablished transitions to authenticated. Dispatched after
// a successful login/registration, or on rehydration from the
// identity file at startup.
type SessionEstablished struct {
	User  *critiqapi.User
	Token string
}

type SessionFailed struct {
	Err string
}

// SessionCleared transitions back to anonymous. Local logout always
// succeeds, whatever the server said.
type SessionCleared struct{}

func (SessionAuthenticating) isAction() {}
func (SessionEstablished) isAction()    {}
func (SessionFailed) isAction()         {}
func (SessionCleared) isAction()        {}

func reduceSession(s Session, a Action) Session {
	switch a := a.(type) {
	case SessionAuthenticating:
		s.Authenticating = true
		s.Err = ""
		return s
	case SessionEstablished:
		return Session{
			User:          a.User,
			Token:         a.Token,
			Authenticated: true,
		}
	case SessionFailed:
		s.Authenticating = false
		s.Err = a.Err
		return s
	case SessionCleared:
		return Session{}
	default:
		return s
	}
}
