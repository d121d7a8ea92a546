package service

import (
	"context"
	"errors"
)

// ErrCityNotFound is returned when geocoding yields no match.
var ErrCityNotFound = errors.New("city not found")

// Location is the first geocoding match for a city.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
}

// Conditions is a single snapshot of current weather.
type Conditions struct {
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weather_code"`
}

type Geocoder interface {
	Resolve(ctx context.Context, city, lang string) (*Location, error)
	Name() string
}

type Forecaster interface {
	Current(ctx context.Context, lat, lon float64) (*Conditions, error)
	Name() string
}

// CallRecorder receives the outcome of every upstream request.
type CallRecorder interface {
	RecordUpstreamCall(ctx context.Context, service string, success bool)
}
