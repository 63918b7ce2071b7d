package state

import "sync"

// Store owns the AppState and serializes every mutation. Reads take a
// shared lock for the duration of a callback; writes go through Apply.
//
// A read callback must not dispatch back into the store: Apply takes the
// write lock and would deadlock behind the read it was called from. Read
// what you need out of the callback first, then dispatch.
type Store struct {
	mu    sync.RWMutex
	state AppState

	subMu     sync.Mutex
	subs      map[int]func(Event)
	nextSubID int
}

// NewStore builds a store holding the initial application state.
func NewStore() *Store {
	return &Store{
		state: NewAppState(),
		subs:  make(map[int]func(Event)),
	}
}

// View runs fn with read access to the state. The pointer is only valid
// for the duration of the call and must not be retained or written
// through.
func (s *Store) View(fn func(st *AppState)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// MapState projects a value out of the state under the read lock. The
// projection reports false when the sub-state it wants is absent, which
// callers treat as "nothing to do".
func MapState[T any](s *Store, proj func(st *AppState) (T, bool)) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return proj(&s.state)
}

// Subscribe registers fn to receive every event emitted by Apply, in
// order, on the applying goroutine. The returned function removes the
// subscription.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// Apply runs the action through the reducers and delivers the resulting
// events to all subscribers before returning. Subscribers therefore always
// observe the post-mutation state.
func (s *Store) Apply(a Action) []Event {
	if a == nil {
		return nil
	}
	s.mu.Lock()
	events := s.state.reduce(a)
	s.mu.Unlock()

	if len(events) == 0 {
		return nil
	}
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, ev := range events {
		for _, fn := range fns {
			fn(ev)
		}
	}
	return events
}
