// Package weather fetches current conditions from the OpenWeather API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/eventlane/eventlane-server/internal/model"
)

var _ model.WeatherProvider = (*OpenWeather)(nil)

type OpenWeather struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewOpenWeather(baseURL, apiKey string, timeout time.Duration) *OpenWeather {
	return &OpenWeather{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type currentResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns current conditions for the location in metric units.
func (w *OpenWeather) Current(ctx context.Context, location string) (model.WeatherReport, error) {
	endpoint := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=%s&units=metric",
		w.baseURL, url.QueryEscape(location), url.QueryEscape(w.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.WeatherReport{}, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := w.http.Do(req)
	if err != nil {
		return model.WeatherReport{}, fmt.Errorf("failed to fetch weather data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.WeatherReport{}, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.WeatherReport{}, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if len(body.Weather) == 0 {
		return model.WeatherReport{}, fmt.Errorf("weather provider returned no conditions")
	}

	return model.WeatherReport{
		Temperature: body.Main.Temp,
		FeelsLike:   body.Main.FeelsLike,
		Condition:   body.Weather[0].Main,
		Description: body.Weather[0].Description,
		Icon:        body.Weather[0].Icon,
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed,
	}, nil
}
