package trips

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no DATABASE_URL is configured.
type MemoryRepo struct {
	mu       sync.Mutex
	requests []TripRequest
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// CreateTripRequest appends the record.
func (r *MemoryRepo) CreateTripRequest(ctx context.Context, tr TripRequest) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, tr)
	return nil
}

// All returns a snapshot of stored requests, oldest first.
func (r *MemoryRepo) All() []TripRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]TripRequest, len(r.requests))
	copy(out, r.requests)
	return out
}

var _ Repo = (*MemoryRepo)(nil)
