package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/eventlane/eventlane-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) CloseAllOpen(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `
        UPDATE sessions SET logout_time = NOW()
        WHERE user_id = $1 AND logout_time IS NULL
    `
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to close open sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) (model.Session, error) {
	const query = `
        INSERT INTO sessions (id, user_id, login_time, logout_time, last_activity, source_address)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, user_id, login_time, logout_time, last_activity, source_address
    `

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	var saved model.Session
	err := r.db.QueryRow(ctx, query,
		session.ID, session.UserID, session.LoginTime, session.LogoutTime,
		session.LastActivity, session.SourceAddress,
	).Scan(
		&saved.ID, &saved.UserID, &saved.LoginTime, &saved.LogoutTime,
		&saved.LastActivity, &saved.SourceAddress,
	)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return saved, nil
}

func (r *SessionRepository) MostRecentOpen(ctx context.Context, userID uuid.UUID) (model.Session, error) {
	const query = `
        SELECT id, user_id, login_time, logout_time, last_activity, source_address
        FROM sessions
        WHERE user_id = $1 AND logout_time IS NULL
        ORDER BY login_time DESC
        LIMIT 1
    `
	var s model.Session
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.LoginTime, &s.LogoutTime, &s.LastActivity, &s.SourceAddress,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get most recent open session: %w", err)
	}
	return s, nil
}

// Touch bumps last_activity. GREATEST keeps the stored value monotone when
// concurrent gate passes race on the same session.
func (r *SessionRepository) Touch(ctx context.Context, id uuid.UUID, now time.Time) error {
	const query = `
        UPDATE sessions SET last_activity = GREATEST(last_activity, $2)
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id, now); err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// Close stamps logout_time once. COALESCE makes closing an already closed
// session a no-op success while the RETURNING clause still distinguishes an
// unknown id.
func (r *SessionRepository) Close(ctx context.Context, id uuid.UUID) (model.Session, error) {
	const query = `
        UPDATE sessions SET logout_time = COALESCE(logout_time, NOW())
        WHERE id = $1
        RETURNING id, user_id, login_time, logout_time, last_activity, source_address
    `
	var s model.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.LoginTime, &s.LogoutTime, &s.LastActivity, &s.SourceAddress,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to close session: %w", err)
	}
	return s, nil
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Session, error) {
	const query = `
        SELECT id, user_id, login_time, logout_time, last_activity, source_address
        FROM sessions
        WHERE user_id = $1
        ORDER BY login_time DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		var s model.Session
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.LoginTime, &s.LogoutTime, &s.LastActivity, &s.SourceAddress,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}
