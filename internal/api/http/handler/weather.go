package handler

import (
	"net/http"

	"github.com/eventlane/eventlane-server/internal/logger"
	"github.com/eventlane/eventlane-server/internal/model"
)

// Weather handles the public weather endpoint.
type Weather struct {
	weather model.WeatherProvider
	logger  *logger.Logger
}

// NewWeather creates a new Weather handler.
func NewWeather(weather model.WeatherProvider, logger *logger.Logger) *Weather {
	return &Weather{weather: weather, logger: logger}
}

// Current returns current conditions for the location path parameter.
func (h *Weather) Current(w http.ResponseWriter, r *http.Request) {
	location := r.PathValue("location")

	report, err := h.weather.Current(r.Context(), location)
	if err != nil {
		h.logger.Error("Weather handler: lookup failed",
			"location", location,
			"error", err.Error())
		respondError(w, http.StatusInternalServerError, "Failed to fetch weather data")
		return
	}

	respondJSON(w, http.StatusOK, report)
}
