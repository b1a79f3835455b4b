package repository

import (
	"context"
	"sync"

	"gmumarket/internal/domain/repository"
)

// memorySessionRepository keeps the token slot in process memory. Used in
// tests and for one-shot runs that should not persist a session.
type memorySessionRepository struct {
	mu      sync.Mutex
	access  string
	refresh string
}

func NewMemorySessionRepository() repository.SessionRepository {
	return &memorySessionRepository{}
}

func (r *memorySessionRepository) Set(ctx context.Context, access, refresh string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.access = access
	r.refresh = refresh
	return nil
}

func (r *memorySessionRepository) Token(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.access, nil
}

func (r *memorySessionRepository) IsAuthenticated(ctx context.Context) bool {
	token, _ := r.Token(ctx)
	return token != ""
}

func (r *memorySessionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.access = ""
	r.refresh = ""
	return nil
}
