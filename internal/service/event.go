package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-server/internal/logger"
	"github.com/eventlane/eventlane-server/internal/model"
)

// Event provides CRUD on user-owned events.
type Event struct {
	eventStore model.EventStore
	logger     *logger.Logger
}

func NewEvent(eventStore model.EventStore, logger *logger.Logger) *Event {
	return &Event{eventStore: eventStore, logger: logger}
}

// EventInput carries the client-editable fields of an event.
type EventInput struct {
	Name        string
	Date        time.Time
	Location    string
	Description string
}

func (s *Event) Create(ctx context.Context, userID uuid.UUID, in EventInput) (model.Event, error) {
	event, err := s.eventStore.Create(ctx, model.Event{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        in.Name,
		Date:        in.Date,
		Location:    in.Location,
		Description: in.Description,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("Event service: event created",
		"user_id", userID,
		"event_id", event.ID)

	return event, nil
}

func (s *Event) List(ctx context.Context, userID uuid.UUID) ([]model.Event, error) {
	events, err := s.eventStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *Event) Update(ctx context.Context, userID, eventID uuid.UUID, in EventInput) (model.Event, error) {
	event, err := s.eventStore.Update(ctx, model.Event{
		ID:          eventID,
		UserID:      userID,
		Name:        in.Name,
		Date:        in.Date,
		Location:    in.Location,
		Description: in.Description,
	})
	if err != nil {
		return model.Event{}, err
	}

	s.logger.Info("Event service: event updated",
		"user_id", userID,
		"event_id", eventID)

	return event, nil
}

func (s *Event) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	if err := s.eventStore.Delete(ctx, eventID, userID); err != nil {
		return err
	}

	s.logger.Info("Event service: event deleted",
		"user_id", userID,
		"event_id", eventID)

	return nil
}
