// Package contact receives and stores contact-form submissions.
package contact

import (
	"context"
	"time"
)

// Message is one contact-form submission.
type Message struct {
	ID        string
	Name      string
	Email     string
	Text      string
	IsRead    bool
	CreatedAt time.Time
}

// Repo persists contact messages. Create-only from the API.
type Repo interface {
	CreateMessage(ctx context.Context, msg Message) error
}
