// Package shelf holds the client's normalized application state:
// one slice per resource, pure reducers, and a root store that view
// layers (the CLI, or a UI attached to criticd) subscribe to.
//
// The store is the single shared mutable resource in the process.
// It is only ever written through Dispatch, and every state value
// handed out is a snapshot: reducers are copy-on-write.
package shelf

import "sync"

// Action is a state-transition descriptor. The action set is closed:
// each slice declares its actions as concrete types carrying typed
// payloads. Reducers treat actions they don't know as no-ops, which
// is the extensibility contract for adding resources without
// breaking others.
type Action interface {
	isAction()
}

// Listener observes every state transition
type Listener func(s State)

type Store struct {
	mu        sync.Mutex
	state     State
	listeners map[int64]Listener
	seed      int64
}

func NewStore() *Store {
	return &Store{
		state:     initialState(),
		listeners: make(map[int64]Listener),
	}
}

// State returns a snapshot of the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch runs the given action through every slice reducer and
// notifies subscribers with the resulting state
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	next := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
}

// Subscribe registers a listener for state transitions and returns
// a cancel func that unregisters it
func (s *Store) Subscribe(l Listener) (cancel func()) {
	s.mu.Lock()
	s.seed++
	id := s.seed
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
