package intake

import "sync"

// Sessions stores in-flight drafts keyed by user id. Lifetime of an entry
// runs from the first intake message to completion or explicit clear.
type Sessions interface {
	Get(userID int64) (*Draft, bool)
	Set(userID int64, d *Draft)
	Clear(userID int64)
}

type memorySessions struct {
	mu     sync.Mutex
	drafts map[int64]*Draft
}

// NewMemorySessions returns the in-process Sessions implementation. Only
// the single admin identity ever holds a session, but the mutex keeps it
// safe regardless of how updates are dispatched.
func NewMemorySessions() Sessions {
	return &memorySessions{drafts: make(map[int64]*Draft)}
}

func (s *memorySessions) Get(userID int64) (*Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[userID]
	return d, ok
}

func (s *memorySessions) Set(userID int64, d *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = d
}

func (s *memorySessions) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}
