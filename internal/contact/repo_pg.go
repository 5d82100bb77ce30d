package contact

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateMessage inserts a contact message.
func (r *PGRepo) CreateMessage(ctx context.Context, msg Message) error {
	const query = `
INSERT INTO contact_messages (
    id,
    name,
    email,
    message,
    is_read,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Text,
		msg.IsRead,
		msg.CreatedAt,
	)
	return err
}

var _ Repo = (*PGRepo)(nil)
