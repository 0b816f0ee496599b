package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	. "github.com/eventlane/eventlane-server/internal/service"

	"github.com/eventlane/eventlane-server/internal/mocks"
	"github.com/eventlane/eventlane-server/internal/model"
	"github.com/eventlane/eventlane-server/internal/testutil"
)

func TestAuth_Register_NewUser(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	sessionStore := mocks.NewSessionStore(t)
	provider := mocks.NewIdentityProvider(t)
	lg := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{}, model.ErrNotFound)
	provider.On("SignUp", mock.Anything, "a@x.com", "pw").Return("ext-1", nil)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "a@x.com" && u.ExternalID == "ext-1" && u.ID != uuid.Nil
	})).Return(model.User{ID: uuid.New()}, nil)

	a := NewAuth(userStore, sessionStore, provider, lg)

	require.NoError(t, a.Register(ctx, "a@x.com", "pw"))
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	sessionStore := mocks.NewSessionStore(t)
	provider := mocks.NewIdentityProvider(t)
	lg := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{ID: uuid.New()}, nil)

	a := NewAuth(userStore, sessionStore, provider, lg)

	err := a.Register(ctx, "a@x.com", "pw")
	require.ErrorIs(t, err, model.ErrDuplicateEmail)
	// The provider must never be asked to create an identity for a
	// duplicate local email.
	provider.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_Register_ProviderFailure(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	sessionStore := mocks.NewSessionStore(t)
	provider := mocks.NewIdentityProvider(t)
	lg := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{}, model.ErrNotFound)
	provider.On("SignUp", mock.Anything, "a@x.com", "pw").Return("", assert.AnError)

	a := NewAuth(userStore, sessionStore, provider, lg)

	err := a.Register(ctx, "a@x.com", "pw")
	require.Error(t, err)
	// A failed sign up must not commit a local user row.
	userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	sessionStore := mocks.NewSessionStore(t)
	provider := mocks.NewIdentityProvider(t)
	lg := testutil.MakeNoopLogger()

	userID := uuid.New()
	sessionID := uuid.New()

	provider.On("SignIn", mock.Anything, "a@x.com", "pw").Return("ext-1", "token-1", nil)
	userStore.On("GetByExternalID", mock.Anything, "ext-1").Return(model.User{ID: userID, Email: "a@x.com", ExternalID: "ext-1"}, nil)
	sessionStore.On("CloseAllOpen", mock.Anything, userID).Return(int64(1), nil)
	sessionStore.On("Create", mock.Anything, mock.MatchedBy(func(s model.Session) bool {
		return s.UserID == userID && s.SourceAddress == "10.0.0.1" && s.Open()
	})).Return(model.Session{ID: sessionID, UserID: userID}, nil)

	a := NewAuth(userStore, sessionStore, provider, lg)

	result, err := a.Login(ctx, "a@x.com", "pw", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, sessionID, result.SessionID)
	assert.Equal(t, "token-1", result.Token)
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	sessionStore := mocks.NewSessionStore(t)
	provider := mocks.NewIdentityProvider(t)
	lg := testutil.MakeNoopLogger()

	provider.On("SignIn", mock.Anything, "a@x.com", "bad").Return("", "", assert.AnError)

	a := NewAuth(userStore, sessionStore, provider, lg)

	_, err := a.Login(ctx, "a@x.com", "bad", "10.0.0.1")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	sessionStore.AssertNotCalled(t, "CloseAllOpen", mock.Anything, mock.Anything)
}

func TestAuth_Login_UserMissingLocally(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	sessionStore := mocks.NewSessionStore(t)
	provider := mocks.NewIdentityProvider(t)
	lg := testutil.MakeNoopLogger()

	provider.On("SignIn", mock.Anything, "a@x.com", "pw").Return("ext-unknown", "token", nil)
	userStore.On("GetByExternalID", mock.Anything, "ext-unknown").Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, sessionStore, provider, lg)

	_, err := a.Login(ctx, "a@x.com", "pw", "10.0.0.1")
	require.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestAuth_Logout_UnknownSession(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	sessionStore := mocks.NewSessionStore(t)
	provider := mocks.NewIdentityProvider(t)
	lg := testutil.MakeNoopLogger()

	id := uuid.New()
	sessionStore.On("Close", mock.Anything, id).Return(model.Session{}, model.ErrNotFound)

	a := NewAuth(userStore, sessionStore, provider, lg)

	require.ErrorIs(t, a.Logout(ctx, id), model.ErrSessionNotFound)
}

func TestAuth_Logout_Success(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	sessionStore := mocks.NewSessionStore(t)
	provider := mocks.NewIdentityProvider(t)
	lg := testutil.MakeNoopLogger()

	id := uuid.New()
	now := time.Now()
	sessionStore.On("Close", mock.Anything, id).Return(model.Session{ID: id, LogoutTime: &now}, nil)

	a := NewAuth(userStore, sessionStore, provider, lg)

	require.NoError(t, a.Logout(ctx, id))
}

// memSessionStore is a thread-safe in-memory SessionStore used to exercise
// the login race without a database.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*model.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[uuid.UUID]*model.Session)}
}

func (m *memSessionStore) CloseAllOpen(_ context.Context, userID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var closed int64
	now := time.Now()
	for _, s := range m.sessions {
		if s.UserID == userID && s.LogoutTime == nil {
			t := now
			s.LogoutTime = &t
			closed++
		}
	}
	return closed, nil
}

func (m *memSessionStore) Create(_ context.Context, session model.Session) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := session
	m.sessions[s.ID] = &s
	return s, nil
}

func (m *memSessionStore) MostRecentOpen(_ context.Context, userID uuid.UUID) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var best *model.Session
	for _, s := range m.sessions {
		if s.UserID != userID || s.LogoutTime != nil {
			continue
		}
		if best == nil || s.LoginTime.After(best.LoginTime) {
			best = s
		}
	}
	if best == nil {
		return model.Session{}, model.ErrNotFound
	}
	return *best, nil
}

func (m *memSessionStore) Touch(_ context.Context, id uuid.UUID, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok && now.After(s.LastActivity) {
		s.LastActivity = now
	}
	return nil
}

func (m *memSessionStore) Close(_ context.Context, id uuid.UUID) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return model.Session{}, model.ErrNotFound
	}
	if s.LogoutTime == nil {
		now := time.Now()
		s.LogoutTime = &now
	}
	return *s, nil
}

func (m *memSessionStore) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Session
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memSessionStore) openCount(userID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int
	for _, s := range m.sessions {
		if s.UserID == userID && s.LogoutTime == nil {
			n++
		}
	}
	return n
}

// Login's close-then-insert is two independent writes, so concurrent logins
// can leave more than one open session. The guarantee is a bound, not
// exactly one.
func TestAuth_Login_ConcurrentLoginsBound(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	provider := mocks.NewIdentityProvider(t)
	lg := testutil.MakeNoopLogger()
	store := newMemSessionStore()

	userID := uuid.New()
	provider.On("SignIn", mock.Anything, "a@x.com", "pw").Return("ext-1", "token", nil)
	userStore.On("GetByExternalID", mock.Anything, "ext-1").Return(model.User{ID: userID}, nil)

	a := NewAuth(userStore, store, provider, lg)

	const n = 8
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := a.Login(ctx, "a@x.com", "pw", "10.0.0.1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	open := store.openCount(userID)
	assert.GreaterOrEqual(t, open, 1)
	assert.LessOrEqual(t, open, n)
}
