package contact

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no DATABASE_URL is configured.
type MemoryRepo struct {
	mu       sync.Mutex
	messages []Message
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// CreateMessage appends the message.
func (r *MemoryRepo) CreateMessage(ctx context.Context, msg Message) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

// All returns a snapshot of stored messages, oldest first.
func (r *MemoryRepo) All() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

var _ Repo = (*MemoryRepo)(nil)
