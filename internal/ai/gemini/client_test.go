package gemini

import (
	"context"
	"errors"
	"testing"

	"travel-backend/internal/ai"
)

func TestNewClientRequiresModel(t *testing.T) {
	if _, err := NewClient("", func() string { return "k" }); err == nil {
		t.Fatal("expected error for empty model")
	}
	if _, err := NewClient("gemini-2.0-flash", nil); err == nil {
		t.Fatal("expected error for nil key accessor")
	}
}

func TestKeyReadPerCall(t *testing.T) {
	key := ""
	c, err := NewClient("gemini-2.0-flash", func() string { return key })
	if err != nil {
		t.Fatal(err)
	}
	if c.Available() {
		t.Fatal("client should be unavailable without a key")
	}
	if _, err := c.GenerateText(context.Background(), "hi"); !errors.Is(err, ai.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	key = "AIzaSy-test"
	if !c.Available() {
		t.Fatal("client should pick up the new key without reconstruction")
	}
}
