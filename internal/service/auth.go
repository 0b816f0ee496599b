package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-server/internal/logger"
	"github.com/eventlane/eventlane-server/internal/model"
)

// Auth orchestrates registration, login and logout against the external
// identity provider and the local user and session stores.
type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	provider     model.IdentityProvider
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	provider model.IdentityProvider,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		provider:     provider,
		logger:       logger,
	}
}

// LoginResult is returned to the client after a successful login.
type LoginResult struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	Token     string
}

// Register creates an identity at the provider and binds a local user to it.
// The local email check runs first so the provider is never asked to create
// an identity for a duplicate email; a provider failure leaves no local row.
func (a *Auth) Register(ctx context.Context, email, password string) error {
	a.logger.Debug("Auth service: starting registration", "email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return model.ErrDuplicateEmail
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	externalID, err := a.provider.SignUp(ctx, email, password)
	if err != nil {
		a.logger.Error("Auth service: provider sign up failed",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to sign up with identity provider: %w", err)
	}

	user := model.User{
		ID:         uuid.New(),
		Email:      email,
		ExternalID: externalID,
		CreatedAt:  time.Now(),
	}

	if _, err := a.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.ErrDuplicateEmail
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: registration completed", "email", email)

	return nil
}

// Login authenticates against the provider, closes every open session of the
// user and opens a fresh one. The close and the insert are two independent
// writes; concurrent logins for one user can leave more than one open session.
func (a *Auth) Login(ctx context.Context, email, password, sourceAddress string) (LoginResult, error) {
	a.logger.Debug("Auth service: starting login", "email", email)

	externalID, token, err := a.provider.SignIn(ctx, email, password)
	if err != nil {
		a.logger.Info("Auth service: provider rejected credentials",
			"email", email,
			"error", err.Error())
		return LoginResult{}, model.ErrInvalidCredentials
	}

	user, err := a.userStore.GetByExternalID(ctx, externalID)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: identity has no local user",
			"email", email,
			"external_id", externalID)
		return LoginResult{}, model.ErrUserNotFound
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to get user by external id: %w", err)
	}

	closed, err := a.sessionStore.CloseAllOpen(ctx, user.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to close open sessions: %w", err)
	}
	if closed > 0 {
		a.logger.Info("Auth service: superseded open sessions",
			"user_id", user.ID,
			"closed", closed)
	}

	now := time.Now()
	session, err := a.sessionStore.Create(ctx, model.Session{
		ID:            uuid.New(),
		UserID:        user.ID,
		LoginTime:     now,
		LastActivity:  now,
		SourceAddress: sourceAddress,
	})
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"user_id", user.ID,
		"session_id", session.ID)

	return LoginResult{
		UserID:    user.ID,
		SessionID: session.ID,
		Token:     token,
	}, nil
}

// Logout closes the session. An unknown id is ErrSessionNotFound; closing an
// existing but already closed session succeeds without touching logout time.
func (a *Auth) Logout(ctx context.Context, sessionID uuid.UUID) error {
	a.logger.Debug("Auth service: logging out", "session_id", sessionID)

	_, err := a.sessionStore.Close(ctx, sessionID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}

	a.logger.Info("Auth service: logout completed", "session_id", sessionID)

	return nil
}
