package fractal

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryStore keeps session state in process memory. Used in tests and
// when the service runs without a database; state is lost on restart.
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[uuid.UUID]SessionState
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[uuid.UUID]SessionState)}
}

func (s *InMemoryStore) Load(_ context.Context, userID uuid.UUID) (SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[userID]
	if !ok {
		return SessionState{}, ErrNotFound
	}
	return state, nil
}

func (s *InMemoryStore) Save(_ context.Context, userID uuid.UUID, state SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[userID] = state
	return nil
}
