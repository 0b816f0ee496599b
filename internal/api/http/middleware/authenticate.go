package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/eventlane/eventlane-server/internal/logger"
	"github.com/eventlane/eventlane-server/internal/model"
)

// Authenticate is the per-request gate in front of protected routes. It
// resolves the bearer token to a (user, session) pair, bumps session
// activity and attaches the principal to the request context.
//
// The token is checked against the identity provider only; the session is
// looked up independently as the user's most recently opened open session.
// A token from a superseded login therefore keeps working and rides the
// newest session until that one is closed too.
type Authenticate struct {
	provider       model.IdentityProvider
	userStore      model.UserStore
	sessionStore   model.SessionStore
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	provider model.IdentityProvider,
	userStore model.UserStore,
	sessionStore model.SessionStore,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		provider:       provider,
		userStore:      userStore,
		sessionStore:   sessionStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle wraps next with the authentication gate. Every failure collapses to
// the same opaque 401; the failing step is only logged.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.authenticate(r)
		if err != nil {
			m.logger.Info("auth gate: request denied",
				"path", r.URL.Path,
				"error", err.Error())
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		ctx := m.contextManager.SetPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticate(r *http.Request) (model.Principal, error) {
	token, err := bearerToken(r)
	if err != nil {
		return model.Principal{}, err
	}

	ctx := r.Context()

	externalID, err := m.provider.Verify(ctx, token)
	if err != nil {
		return model.Principal{}, model.ErrInvalidToken
	}

	user, err := m.userStore.GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Principal{}, model.ErrUserNotFound
		}
		return model.Principal{}, err
	}

	session, err := m.sessionStore.MostRecentOpen(ctx, user.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Principal{}, model.ErrNoActiveSession
		}
		return model.Principal{}, err
	}

	if err := m.sessionStore.Touch(ctx, session.ID, time.Now()); err != nil {
		return model.Principal{}, err
	}

	return model.Principal{User: user, Session: session}, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", model.ErrMissingToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", model.ErrMissingToken
	}

	return token, nil
}
