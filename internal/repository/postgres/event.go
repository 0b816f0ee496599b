package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/eventlane/eventlane-server/internal/model"
)

var _ model.EventStore = (*EventRepository)(nil)

type EventRepository struct {
	db *Connection
}

func NewEventRepository(db *Connection) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event model.Event) (model.Event, error) {
	const query = `
        INSERT INTO events (id, user_id, name, date, location, description, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, user_id, name, date, location, description, created_at
    `

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	var saved model.Event
	err := r.db.QueryRow(ctx, query,
		event.ID, event.UserID, event.Name, event.Date, event.Location,
		event.Description, event.CreatedAt,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Name, &saved.Date, &saved.Location,
		&saved.Description, &saved.CreatedAt,
	)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return saved, nil
}

func (r *EventRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Event, error) {
	const query = `
        SELECT id, user_id, name, date, location, description, created_at
        FROM events
        WHERE user_id = $1
        ORDER BY date ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Name, &e.Date, &e.Location, &e.Description, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

// Update rewrites the mutable fields of an event the user owns. A row owned
// by someone else is indistinguishable from a missing one.
func (r *EventRepository) Update(ctx context.Context, event model.Event) (model.Event, error) {
	const query = `
        UPDATE events SET name = $3, date = $4, location = $5, description = $6
        WHERE id = $1 AND user_id = $2
        RETURNING id, user_id, name, date, location, description, created_at
    `
	var saved model.Event
	err := r.db.QueryRow(ctx, query,
		event.ID, event.UserID, event.Name, event.Date, event.Location, event.Description,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Name, &saved.Date, &saved.Location,
		&saved.Description, &saved.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Event{}, model.ErrNotFound
		}
		return model.Event{}, fmt.Errorf("failed to update event: %w", err)
	}
	return saved, nil
}

func (r *EventRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	const query = `DELETE FROM events WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
