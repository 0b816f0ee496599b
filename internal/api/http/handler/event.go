package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/eventlane/eventlane-server/internal/apierrors"
	"github.com/eventlane/eventlane-server/internal/logger"
	"github.com/eventlane/eventlane-server/internal/model"
	"github.com/eventlane/eventlane-server/internal/service"
)

// EventService defines CRUD operations on user-owned events.
type EventService interface {
	Create(ctx context.Context, userID uuid.UUID, in service.EventInput) (model.Event, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Event, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, in service.EventInput) (model.Event, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
}

// Event handles HTTP endpoints for event CRUD and per-location weather.
type Event struct {
	eventService   EventService
	weather        model.WeatherProvider
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewEvent creates a new Event handler.
func NewEvent(
	eventService EventService,
	weather model.WeatherProvider,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Event {
	return &Event{
		eventService:   eventService,
		weather:        weather,
		contextManager: contextManager,
		logger:         logger,
	}
}

type eventRequest struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

type eventResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toEventResponse(e model.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Name:        e.Name,
		Date:        e.Date,
		Location:    e.Location,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// Create adds an event for the caller.
func (h *Event) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.contextManager.GetPrincipal(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.eventService.Create(r.Context(), principal.User.ID, service.EventInput{
		Name:        req.Name,
		Date:        req.Date,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		apiErr := handleError(err)
		respondError(w, apiErr.Status, apiErr.Message)
		return
	}

	respondJSON(w, http.StatusCreated, toEventResponse(event))
}

// List returns the caller's events.
func (h *Event) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.contextManager.GetPrincipal(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	events, err := h.eventService.List(r.Context(), principal.User.ID)
	if err != nil {
		apiErr := handleError(err)
		respondError(w, apiErr.Status, apiErr.Message)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}

	respondJSON(w, http.StatusOK, out)
}

// Update rewrites an event the caller owns.
func (h *Event) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.contextManager.GetPrincipal(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.eventService.Update(r.Context(), principal.User.ID, eventID, service.EventInput{
		Name:        req.Name,
		Date:        req.Date,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		apiErr := h.eventError(err)
		respondError(w, apiErr.Status, apiErr.Message)
		return
	}

	respondJSON(w, http.StatusOK, toEventResponse(event))
}

// Delete removes an event the caller owns.
func (h *Event) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.contextManager.GetPrincipal(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	if err := h.eventService.Delete(r.Context(), principal.User.ID, eventID); err != nil {
		apiErr := h.eventError(err)
		respondError(w, apiErr.Status, apiErr.Message)
		return
	}

	respondMessage(w, http.StatusOK, "Event deleted successfully")
}

// Weather returns current conditions for a location, for event planning.
func (h *Event) Weather(w http.ResponseWriter, r *http.Request) {
	report, err := h.weather.Current(r.Context(), r.PathValue("location"))
	if err != nil {
		h.logger.Error("Event handler: weather lookup failed",
			"location", r.PathValue("location"),
			"error", err.Error())
		respondError(w, http.StatusBadRequest, "Unable to fetch weather data")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// eventError keeps the body of the original API: a missing row and a row
// owned by another user are reported identically.
func (h *Event) eventError(err error) *apierrors.APIError {
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.New(http.StatusBadRequest, "Event not found or unauthorized")
	}
	return handleError(err)
}
