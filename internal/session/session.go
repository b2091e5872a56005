package session

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Session holds attributes for one client, identified by an opaque id.
type Session struct {
	ID string

	store  *Store
	mu     sync.RWMutex
	values map[string]any
}

func (s *Session) Set(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

func (s *Session) Get(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

func (s *Session) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, name)
}

// Invalidate drops the session from its store.
func (s *Session) Invalidate() {
	s.store.Remove(s.ID)
}

// Store is a process-wide map of live sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	created  atomic.Uint64
}

func NewStore() *Store {
	return &Store{sessions: map[string]*Session{}}
}

func (st *Store) Create() *Session {
	s := &Session{
		ID:     uuid.New().String(),
		store:  st,
		values: map[string]any{},
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	st.created.Inc()

	return s
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// GetOrCreate returns the session for id, creating a fresh one when id is
// unknown. created reports which happened.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s, false
		}
	}
	return st.Create(), true
}

func (st *Store) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len is the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Created counts every session ever created by this store.
func (st *Store) Created() uint64 {
	return st.created.Load()
}
