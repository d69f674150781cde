// Package identity persists the auth session (bearer token + user)
// between runs. It's the only durable client state: everything else
// lives in the in-memory store and is re-fetched from the server.
package identity

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/critiqapi"
	"github.com/pkg/errors"
)

// read+write for owner, no permissions for others
const sessionFileMode = 0600

const environmentTokenVariable = "CRITIC_API_KEY"

// Session is what gets written to the identity file
type Session struct {
	User  *critiqapi.User `json:"user"`
	Token string          `json:"token"`
}

// Store reads and writes the identity file. It's an explicit service
// object: construct one, inject it where session state is needed.
type Store struct {
	// Path to the identity file
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// HasSaved returns true if a session could be rehydrated
func (s *Store) HasSaved() bool {
	// environment has priority
	if os.Getenv(environmentTokenVariable) != "" {
		return true
	}

	_, err := os.Lstat(s.Path)
	return !os.IsNotExist(err)
}

// Load reads the persisted session. Returns (nil, nil) when there's
// nothing saved; that's the anonymous case, not an error. Never
// touches the network: token validity is discovered lazily, on the
// first authenticated request that fails.
func (s *Store) Load() (*Session, error) {
	if envToken := os.Getenv(environmentTokenVariable); envToken != "" {
		return &Session{Token: envToken}, nil
	}

	stats, err := os.Lstat(s.Path)
	if err != nil && os.IsNotExist(err) {
		// no saved session
		return nil, nil
	}

	if stats.Mode()&077 > 0 {
		if runtime.GOOS == "windows" {
			// windows won't let you 0600, because it's ACL-based.
			// other users can't access the file anyway.
		} else {
			comm.Logf("[Warning] Session file had wrong permissions (%#o), resetting to %#o\n", stats.Mode()&0777, sessionFileMode)
			err = os.Chmod(s.Path, sessionFileMode)
			if err != nil {
				comm.Logf("[Warning] Couldn't chmod session file: %s\n", err.Error())
			}
		}
	}

	buf, err := ioutil.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}

	sess := &Session{}
	err = json.Unmarshal(buf, sess)
	if err != nil {
		return nil, errors.Wrap(err, "parsing session file")
	}

	if sess.Token == "" {
		return nil, nil
	}

	return sess, nil
}

// Save writes the session, creating parent directories as needed
func (s *Store) Save(sess *Session) error {
	err := os.MkdirAll(filepath.Dir(s.Path), os.FileMode(0755))
	if err != nil {
		return errors.Wrap(err, "creating directory for session file")
	}

	buf, err := json.Marshal(sess)
	if err != nil {
		return errors.WithStack(err)
	}

	err = ioutil.WriteFile(s.Path, buf, os.FileMode(sessionFileMode))
	if err != nil {
		return errors.Wrap(err, "writing session file")
	}

	return nil
}

// Clear removes the identity file. Clearing an absent file is fine.
func (s *Store) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "deleting session file")
	}

	return nil
}
