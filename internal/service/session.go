package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-server/internal/logger"
	"github.com/eventlane/eventlane-server/internal/model"
)

// Sessions exposes the caller's login history.
type Sessions struct {
	sessionStore model.SessionStore
	logger       *logger.Logger
}

func NewSessions(sessionStore model.SessionStore, logger *logger.Logger) *Sessions {
	return &Sessions{sessionStore: sessionStore, logger: logger}
}

// List returns every session of the user, newest login first.
func (s *Sessions) List(ctx context.Context, userID uuid.UUID) ([]model.Session, error) {
	sessions, err := s.sessionStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}
