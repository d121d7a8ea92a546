package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vzahanych/weather-reply/internal/config"
	"github.com/vzahanych/weather-reply/pkg/logger"
	"github.com/vzahanych/weather-reply/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const currentFields = "temperature_2m,weather_code"

type OpenMeteoForecaster struct {
	baseURL  string
	client   *http.Client
	params   map[string]string
	logger   *zap.Logger
	tele     *telemetry.Telemetry
	recorder CallRecorder
}

type forecastResponse struct {
	Current struct {
		Temperature *float64 `json:"temperature_2m"`
		WeatherCode *int     `json:"weather_code"`
	} `json:"current"`
}

func NewOpenMeteoForecaster(cfg config.UpstreamConfig, timeout time.Duration, logger *zap.Logger, tele *telemetry.Telemetry) *OpenMeteoForecaster {
	return &OpenMeteoForecaster{
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		params: cfg.Params,
		logger: logger,
		tele:   tele,
	}
}

func (s *OpenMeteoForecaster) SetCallRecorder(r CallRecorder) {
	s.recorder = r
}

func (s *OpenMeteoForecaster) Name() string {
	return "open-meteo-forecast"
}

func (s *OpenMeteoForecaster) Current(ctx context.Context, lat, lon float64) (*Conditions, error) {
	ctx, span := s.tele.GetTracer().Start(ctx, "open-meteo.Current")
	defer span.End()

	span.SetAttributes(
		attribute.Float64("lat", lat),
		attribute.Float64("lon", lon),
		attribute.String("service", s.Name()),
	)

	log := logger.FromContext(ctx, s.logger)

	q := url.Values{}
	for key, value := range s.params {
		q.Set(key, value)
	}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 6, 64))
	q.Set("current", currentFields)
	if q.Get("timezone") == "" {
		q.Set("timezone", "auto")
	}

	var out forecastResponse
	err := getJSON(ctx, s.client, s.baseURL, "/forecast", q, &out)
	if err == nil && (out.Current.Temperature == nil || out.Current.WeatherCode == nil) {
		err = errors.New("unexpected response body: missing current conditions")
	}

	s.record(ctx, err == nil)

	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		s.tele.RecordError(ctx, err, map[string]interface{}{"service": s.Name()})
		log.Warn("Forecast request failed",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		return nil, fmt.Errorf("forecast: %w", err)
	}

	conditions := &Conditions{
		Temperature: *out.Current.Temperature,
		WeatherCode: *out.Current.WeatherCode,
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Float64("temperature", conditions.Temperature),
		attribute.Int("weather_code", conditions.WeatherCode),
	)

	log.Debug("Fetched current conditions",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Float64("temperature", conditions.Temperature),
		zap.Int("weather_code", conditions.WeatherCode))

	return conditions, nil
}

func (s *OpenMeteoForecaster) record(ctx context.Context, success bool) {
	if s.recorder != nil {
		s.recorder.RecordUpstreamCall(ctx, s.Name(), success)
	}
}
