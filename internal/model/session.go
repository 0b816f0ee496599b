package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore defines persistence operations for login sessions.
type SessionStore interface {
	// CloseAllOpen stamps logout time on every open session of the user
	// and returns how many rows were closed.
	CloseAllOpen(ctx context.Context, userID uuid.UUID) (int64, error)
	Create(ctx context.Context, session Session) (Session, error)
	// MostRecentOpen returns the open session with the latest login time,
	// or ErrNotFound when the user has no open session.
	MostRecentOpen(ctx context.Context, userID uuid.UUID) (Session, error)
	// Touch bumps last activity. The stored value never decreases.
	Touch(ctx context.Context, id uuid.UUID, now time.Time) error
	// Close stamps logout time on the session. Closing an already closed
	// session is a no-op success; an unknown id is ErrNotFound.
	Close(ctx context.Context, id uuid.UUID) (Session, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Session, error)
}

// Session is a persisted login record. It is open while LogoutTime is nil
// and closed once it is set; rows are never deleted.
type Session struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	LoginTime     time.Time
	LogoutTime    *time.Time
	LastActivity  time.Time
	SourceAddress string
}

// Open reports whether the session has not been logged out yet.
func (s Session) Open() bool {
	return s.LogoutTime == nil
}
