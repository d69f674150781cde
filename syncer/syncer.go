// Package syncer hosts the async orchestrators: each operation
// sequences loading-state transitions around a critiqapi call and
// reconciles the result into the store. Errors never escape to view
// layers through panics or callbacks: they land in the relevant
// slice's Err field, and are also returned for callers that drive
// the orchestrators directly.
package syncer

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/critiqhq/critic/critiqapi"
	"github.com/critiqhq/critic/identity"
	"github.com/critiqhq/critic/shelf"
	"golang.org/x/sync/singleflight"
)

// ClientFunc builds an API client for a given bearer token. An empty
// token yields an anonymous client.
type ClientFunc func(token string) *critiqapi.Client

type Syncer struct {
	store     *shelf.Store
	newClient ClientFunc
	identity  *identity.Store

	// collapses duplicate concurrent loads of the same page
	group singleflight.Group

	mu         sync.Mutex
	catalogGen int64
	libraryGen int64

	// Logf, when set, receives diagnostics that aren't surfaced
	// through the store (e.g. a failed best-effort logout call)
	Logf func(format string, args ...interface{})
}

func New(store *shelf.Store, newClient ClientFunc, identityStore *identity.Store) *Syncer {
	return &Syncer{
		store:     store,
		newClient: newClient,
		identity:  identityStore,
	}
}

// Store returns the store this syncer mutates
func (s *Syncer) Store() *shelf.Store {
	return s.store
}

func (s *Syncer) logf(format string, args ...interface{}) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

// client returns an API client carrying the current session token,
// which may be empty (anonymous)
func (s *Syncer) client() *critiqapi.Client {
	return s.newClient(s.store.State().Session.Token)
}

// authedClient returns an API client for the current session, or an
// error when nobody is logged in
func (s *Syncer) authedClient() (*critiqapi.Client, error) {
	sess := s.store.State().Session
	if !sess.Authenticated || sess.Token == "" {
		return nil, fmt.Errorf("not logged in")
	}
	return s.newClient(sess.Token), nil
}

// errString flattens any failure to the single string the store
// holds. API errors carry the server-supplied (or fallback) message;
// transport errors surface with their native message; the store
// doesn't distinguish.
func errString(err error) string {
	if ae, ok := critiqapi.AsAPIError(err); ok {
		return ae.Message
	}
	return err.Error()
}

// loadKey builds a singleflight key for one page of one collection
func loadKey(collection string, filters map[string]string, page int64, limit int64) string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%s|%d|%d", collection, page, limit)
	for _, k := range keys {
		fmt.Fprintf(&b, "|%s=%s", k, filters[k])
	}
	return b.String()
}

func filtersEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// nextGen issues a new request generation for a collection
func (s *Syncer) nextGen(gen *int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	*gen++
	return *gen
}

// isLatest reports whether the given generation is still the most
// recently issued one for its collection. A response whose
// generation is stale is discarded entirely: a superseding request
// owns the collection now.
func (s *Syncer) isLatest(gen *int64, issued int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *gen == issued
}
