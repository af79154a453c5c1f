package identity

import "time"

// Session tracks identity state for one pipeline run: the first-seen
// timestamp per stable ID and a diagnostic duplicate counter. A session must
// not be shared between unrelated runs; construct a new one (or call Reset)
// per invocation.
type Session struct {
	firstSeen  map[string]time.Time
	duplicates int
	now        func() time.Time
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{
		firstSeen: make(map[string]time.Time),
		now:       time.Now,
	}
}

// Observe records a stable ID sighting. The first occurrence stamps and
// returns the current time; repeats return the original timestamp and
// increment the duplicate counter.
func (s *Session) Observe(stableID string) time.Time {
	if seen, ok := s.firstSeen[stableID]; ok {
		s.duplicates++
		return seen
	}
	first := s.now()
	s.firstSeen[stableID] = first
	return first
}

// Duplicates reports how many repeat sightings this session has absorbed.
func (s *Session) Duplicates() int {
	return s.duplicates
}

// Known reports whether the stable ID has been observed in this session.
func (s *Session) Known(stableID string) bool {
	_, ok := s.firstSeen[stableID]
	return ok
}

// Len returns the number of distinct stable IDs observed.
func (s *Session) Len() int {
	return len(s.firstSeen)
}

// Reset clears all session state so the resolver can be reused for an
// independent run within the same process.
func (s *Session) Reset() {
	s.firstSeen = make(map[string]time.Time)
	s.duplicates = 0
}

// SetClock overrides the session time source.
func (s *Session) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}
