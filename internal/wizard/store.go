package wizard

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("checkout session not found")

// Store keeps one wizard per storefront session. There is exactly one
// logical actor per wizard; the store itself is shared across request
// goroutines.
type Store struct {
	mu      sync.RWMutex
	wizards map[string]*Wizard
}

func NewStore() *Store {
	return &Store{wizards: make(map[string]*Wizard)}
}

// Factory builds a wizard for a fresh session id.
type Factory func(id string) *Wizard

// Create mints a session id, builds the wizard and registers it.
func (s *Store) Create(build Factory) *Wizard {
	id := uuid.NewString()
	w := build(id)

	s.mu.Lock()
	s.wizards[id] = w
	s.mu.Unlock()
	return w
}

func (s *Store) Get(id string) (*Wizard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wizards[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return w, nil
}

// Remove closes the wizard and forgets the session.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	w, ok := s.wizards[id]
	delete(s.wizards, id)
	s.mu.Unlock()

	if ok {
		w.Close()
	}
}
