package model

import "context"

// WeatherProvider returns current conditions for a location.
type WeatherProvider interface {
	Current(ctx context.Context, location string) (WeatherReport, error)
}

// WeatherReport is the subset of provider data exposed to clients.
type WeatherReport struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}
