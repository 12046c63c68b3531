// Package session stores per-session conversation context: the last
// knowledge base question/answer pair, reused as the passage for inference
// fallback. Each session's context is fully isolated from every other
// session's.
package session

import (
	"sync"
	"time"
)

// DefaultContext is returned for sessions that have never had a knowledge
// base match.
const DefaultContext = "General customer support information"

// Store persists conversation context keyed by session id. Implementations
// must serialize access per key so a reader never observes a torn context
// string. Sessions are created on first use.
type Store interface {
	// Read returns the stored context for the session, or DefaultContext
	// when none has been set.
	Read(sessionID string) string
	// Update replaces the session's context with the matched question and
	// answer joined into one free-text string. Last write wins.
	Update(sessionID, question, answer string)
}

// Sweeper is implemented by stores that need explicit eviction of idle
// sessions. Stores with native expiry (Redis) do not implement it.
type Sweeper interface {
	// Sweep evicts sessions idle for longer than the given duration and
	// returns how many were removed.
	Sweep(idle time.Duration) int
}

// contextString joins a matched question and answer into the free-text
// passage handed to inference.
func contextString(question, answer string) string {
	return question + " " + answer
}

type memoryEntry struct {
	context  string
	lastSeen time.Time
}

// MemoryStore keeps contexts in-process. The single mutex covers both the
// map and the stored strings, which is enough serialization at chat traffic
// rates.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory context store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memoryEntry),
		now:      time.Now,
	}
}

// Read returns the session's context, or DefaultContext when the session is
// unknown. Reading counts as activity for sweeping purposes.
func (s *MemoryStore) Read(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		return DefaultContext
	}
	e.lastSeen = s.now()
	return e.context
}

// Update overwrites the session's context with the matched pair.
func (s *MemoryStore) Update(sessionID, question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = &memoryEntry{
		context:  contextString(question, answer),
		lastSeen: s.now(),
	}
}

// Sweep evicts sessions idle for longer than idle and returns the count
// removed. A zero or negative idle disables eviction.
func (s *MemoryStore) Sweep(idle time.Duration) int {
	if idle <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
