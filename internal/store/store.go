package store

import "sync"

// State is the composed application state tree. Each slice is owned
// exclusively by its reducer; cross-slice data travels as explicit
// values, never by one slice reading another.
type State struct {
	Login LoginState
	List  ListState
	Task  TaskState
}

// DefaultState returns the union of the three slice defaults.
func DefaultState() State {
	return State{
		Login: DefaultLoginState(),
		List:  DefaultListState(),
		Task:  DefaultTaskState(),
	}
}

// Reduce routes one action through every slice reducer and returns the
// next tree. Exposed so tests can drive transitions without a Store.
func Reduce(state State, action Action) State {
	return State{
		Login: LoginReducer(state.Login, action),
		List:  ListReducer(state.List, action),
		Task:  TaskReducer(state.Task, action),
	}
}

// Store holds the state tree and is the sole authority for committing
// transitions. Commits are atomic and synchronous.
type Store struct {
	mu          sync.Mutex
	state       State
	listeners   map[int]func()
	nextID      int
	dispatching bool
}

// New creates a store initialized to the slice defaults.
func New() *Store {
	return &Store{
		state:     DefaultState(),
		listeners: make(map[int]func()),
	}
}

// GetState returns the current state tree.
func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch routes the action to all slice reducers, commits the result,
// then notifies subscribers synchronously. The store rejects nothing;
// validation belongs to the caller.
//
// Re-entrant dispatch is forbidden: calling Dispatch from a reducer or
// a subscribed listener panics, since it would interleave commits.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	if s.dispatching {
		s.mu.Unlock()
		panic("store: dispatch during dispatch")
	}
	s.dispatching = true
	s.state = Reduce(s.state, action)

	notify := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		notify = append(notify, fn)
	}
	s.mu.Unlock()

	for _, fn := range notify {
		fn()
	}

	s.mu.Lock()
	s.dispatching = false
	s.mu.Unlock()
}

// Subscribe registers a listener invoked after every commit. The
// returned function unregisters it.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
