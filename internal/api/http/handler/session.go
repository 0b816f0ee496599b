package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-server/internal/logger"
	"github.com/eventlane/eventlane-server/internal/model"
)

// SessionService lists a user's login history.
type SessionService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Session, error)
}

// Session handles HTTP endpoints for session history.
type Session struct {
	sessionService SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSession creates a new Session handler.
func NewSession(sessionService SessionService, contextManager model.ContextManager, logger *logger.Logger) *Session {
	return &Session{
		sessionService: sessionService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type sessionResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	LoginTime    time.Time  `json:"loginTime"`
	LogoutTime   *time.Time `json:"logoutTime,omitempty"`
	LastActivity time.Time  `json:"lastActivity"`
	IPAddress    string     `json:"ipAddress"`
}

func toSessionResponse(s model.Session) sessionResponse {
	return sessionResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		LoginTime:    s.LoginTime,
		LogoutTime:   s.LogoutTime,
		LastActivity: s.LastActivity,
		IPAddress:    s.SourceAddress,
	}
}

// List returns every session of the caller, newest login first.
func (h *Session) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.contextManager.GetPrincipal(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sessions, err := h.sessionService.List(r.Context(), principal.User.ID)
	if err != nil {
		apiErr := handleError(err)
		respondError(w, apiErr.Status, apiErr.Message)
		return
	}

	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionResponse(s))
	}

	respondJSON(w, http.StatusOK, out)
}

// Current returns the session the gate resolved for this request.
func (h *Session) Current(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.contextManager.GetPrincipal(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(principal.Session))
}
