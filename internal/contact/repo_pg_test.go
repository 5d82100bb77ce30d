package contact

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateMessage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	msg := Message{
		ID:        "msg-1",
		Name:      "Asha",
		Email:     "asha@example.com",
		Text:      "Loved the trip planner!",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO contact_messages").
		WithArgs(msg.ID, msg.Name, msg.Email, msg.Text, false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateMessage(context.Background(), msg); err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
