package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eventlane/eventlane-server/internal/api/http/httpctx"
	"github.com/eventlane/eventlane-server/internal/mocks"
	"github.com/eventlane/eventlane-server/internal/model"
	"github.com/eventlane/eventlane-server/internal/service"
	"github.com/eventlane/eventlane-server/internal/testutil"
)

// withPrincipal attaches an authenticated principal the way the gate does.
func withPrincipal(r *http.Request, ctxMgr model.ContextManager, userID uuid.UUID) *http.Request {
	ctx := ctxMgr.SetPrincipal(r.Context(), model.Principal{
		User:    model.User{ID: userID, Email: "a@x.com"},
		Session: model.Session{ID: uuid.New(), UserID: userID},
	})
	return r.WithContext(ctx)
}

func TestEvent_Create(t *testing.T) {
	t.Parallel()

	svc := mocks.NewEventService(t)
	weather := mocks.NewWeatherProvider(t)
	ctxMgr := httpctx.NewManager()

	userID := uuid.New()
	eventID := uuid.New()
	date := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	svc.On("Create", mock.Anything, userID, mock.MatchedBy(func(in service.EventInput) bool {
		return in.Name == "Standup" && in.Location == "Berlin" && in.Date.Equal(date)
	})).Return(model.Event{ID: eventID, UserID: userID, Name: "Standup", Date: date, Location: "Berlin"}, nil)

	h := NewEvent(svc, weather, ctxMgr, testutil.MakeNoopLogger())

	body := `{"name":"Standup","date":"2026-09-12T18:00:00Z","location":"Berlin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	req = withPrincipal(req, ctxMgr, userID)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp eventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.ID)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, "Standup", resp.Name)
}

func TestEvent_Create_NoPrincipal(t *testing.T) {
	t.Parallel()

	svc := mocks.NewEventService(t)
	weather := mocks.NewWeatherProvider(t)
	ctxMgr := httpctx.NewManager()

	h := NewEvent(svc, weather, ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEvent_List(t *testing.T) {
	t.Parallel()

	svc := mocks.NewEventService(t)
	weather := mocks.NewWeatherProvider(t)
	ctxMgr := httpctx.NewManager()

	userID := uuid.New()
	svc.On("List", mock.Anything, userID).Return([]model.Event{
		{ID: uuid.New(), UserID: userID, Name: "One"},
		{ID: uuid.New(), UserID: userID, Name: "Two"},
	}, nil)

	h := NewEvent(svc, weather, ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req = withPrincipal(req, ctxMgr, userID)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []eventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestEvent_List_Empty(t *testing.T) {
	t.Parallel()

	svc := mocks.NewEventService(t)
	weather := mocks.NewWeatherProvider(t)
	ctxMgr := httpctx.NewManager()

	userID := uuid.New()
	svc.On("List", mock.Anything, userID).Return([]model.Event{}, nil)

	h := NewEvent(svc, weather, ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req = withPrincipal(req, ctxMgr, userID)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// An empty list is a JSON array, never null.
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestEvent_Update_NotOwned(t *testing.T) {
	t.Parallel()

	svc := mocks.NewEventService(t)
	weather := mocks.NewWeatherProvider(t)
	ctxMgr := httpctx.NewManager()

	userID := uuid.New()
	eventID := uuid.New()

	svc.On("Update", mock.Anything, userID, eventID, mock.Anything).Return(model.Event{}, model.ErrNotFound)

	h := NewEvent(svc, weather, ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPut, "/api/events/"+eventID.String(), strings.NewReader(`{"name":"x"}`))
	req.SetPathValue("id", eventID.String())
	req = withPrincipal(req, ctxMgr, userID)
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Event not found or unauthorized", body["error"])
}

func TestEvent_Delete(t *testing.T) {
	t.Parallel()

	svc := mocks.NewEventService(t)
	weather := mocks.NewWeatherProvider(t)
	ctxMgr := httpctx.NewManager()

	userID := uuid.New()
	eventID := uuid.New()

	svc.On("Delete", mock.Anything, userID, eventID).Return(nil)

	h := NewEvent(svc, weather, ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID.String(), nil)
	req.SetPathValue("id", eventID.String())
	req = withPrincipal(req, ctxMgr, userID)
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Event deleted successfully", body["message"])
}

func TestEvent_Delete_InvalidID(t *testing.T) {
	t.Parallel()

	svc := mocks.NewEventService(t)
	weather := mocks.NewWeatherProvider(t)
	ctxMgr := httpctx.NewManager()

	h := NewEvent(svc, weather, ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/events/nope", nil)
	req.SetPathValue("id", "nope")
	req = withPrincipal(req, ctxMgr, uuid.New())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvent_Weather(t *testing.T) {
	t.Parallel()

	svc := mocks.NewEventService(t)
	weather := mocks.NewWeatherProvider(t)
	ctxMgr := httpctx.NewManager()

	weather.On("Current", mock.Anything, "Berlin").Return(model.WeatherReport{
		Temperature: 21.5,
		Condition:   "Clouds",
	}, nil)

	h := NewEvent(svc, weather, ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/events/weather/Berlin", nil)
	req.SetPathValue("location", "Berlin")
	req = withPrincipal(req, ctxMgr, uuid.New())
	rec := httptest.NewRecorder()

	h.Weather(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var report model.WeatherReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "Clouds", report.Condition)
}

func TestEvent_Weather_ProviderError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewEventService(t)
	weather := mocks.NewWeatherProvider(t)
	ctxMgr := httpctx.NewManager()

	weather.On("Current", mock.Anything, "Nowhere").Return(model.WeatherReport{}, assert.AnError)

	h := NewEvent(svc, weather, ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/events/weather/Nowhere", nil)
	req.SetPathValue("location", "Nowhere")
	req = withPrincipal(req, ctxMgr, uuid.New())
	rec := httptest.NewRecorder()

	h.Weather(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unable to fetch weather data", body["error"])
}
