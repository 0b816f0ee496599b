package handler

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-server/internal/logger"
	"github.com/eventlane/eventlane-server/internal/model"
	"github.com/eventlane/eventlane-server/internal/service"
)

// AuthService defines registration, login and logout operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password, sourceAddress string) (service.LoginResult, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	SessionID string `json:"sessionId"`
}

type loginResponse struct {
	Message   string    `json:"message"`
	UserID    uuid.UUID `json:"userId"`
	SessionID uuid.UUID `json:"sessionId"`
	Token     string    `json:"token"`
}

// Register creates a new account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.Debug("Auth handler: processing registration", "email", req.Email)

	if err := h.authService.Register(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			// Duplicate registrations answer on the message key, matching
			// the rest of the auth surface's success bodies.
			respondMessage(w, http.StatusBadRequest, "Email already exists.")
			return
		}
		apiErr := handleError(err)
		respondError(w, apiErr.Status, apiErr.Message)
		return
	}

	respondMessage(w, http.StatusCreated, "User registered successfully")
}

// Login authenticates credentials and opens a fresh session.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.Debug("Auth handler: processing login", "email", req.Email)

	result, err := h.authService.Login(r.Context(), req.Email, req.Password, sourceAddress(r))
	if err != nil {
		apiErr := handleError(err)
		respondError(w, apiErr.Status, apiErr.Message)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Message:   "Login successful",
		UserID:    result.UserID,
		SessionID: result.SessionID,
		Token:     result.Token,
	})
}

// Logout closes the session named in the request body.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	if err := h.authService.Logout(r.Context(), sessionID); err != nil {
		apiErr := handleError(err)
		respondError(w, apiErr.Status, apiErr.Message)
		return
	}

	respondMessage(w, http.StatusOK, "Logout successful")
}

func sourceAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
