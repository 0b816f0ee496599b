package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventStore defines persistence operations for events. Every operation is
// scoped to the owning user; a row owned by someone else behaves like a
// missing row.
type EventStore interface {
	Create(ctx context.Context, event Event) (Event, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Event, error)
	Update(ctx context.Context, event Event) (Event, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// Event represents a user-owned calendar event.
type Event struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Date        time.Time
	Location    string
	Description string
	CreatedAt   time.Time
}
