package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByExternalID(ctx context.Context, externalID string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a local user bound 1:1 to an external identity.
// A row is created once at registration and never modified afterwards.
type User struct {
	ID         uuid.UUID
	Email      string
	ExternalID string
	CreatedAt  time.Time
}
