// Package session owns the per-conversation persona state. It is the only
// mutable shared state in the engine.
package session

import (
	"sync"

	"github.com/DeVyAN2006/honeypot-scam-api/internal/persona"
)

// Store maps conversation ids to persona states. Sessions are created
// implicitly on first lookup and live for the process lifetime; there is no
// eviction (accepted limitation, growth is observable via Len).
type Store struct {
	mu       sync.Mutex
	sessions map[string]persona.State
}

func New() *Store {
	return &Store{sessions: make(map[string]persona.State)}
}

// Get returns the current state for a conversation, Idle if unseen.
func (s *Store) Get(id string) persona.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current(id)
}

// Put overwrites the state for a conversation.
func (s *Store) Put(id string, state persona.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = state
}

// Advance applies fn to the current state and stores the result, all under
// the store lock. Concurrent advances for the same conversation serialize
// here, so no read-modify-write can be lost. fn must not block.
func (s *Store) Advance(id string, fn func(persona.State) persona.State) persona.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.current(id))
	s.sessions[id] = next
	return next
}

// Len returns the number of tracked conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) current(id string) persona.State {
	if st, ok := s.sessions[id]; ok {
		return st
	}
	return persona.Idle
}
