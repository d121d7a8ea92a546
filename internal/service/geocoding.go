package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vzahanych/weather-reply/internal/config"
	"github.com/vzahanych/weather-reply/pkg/logger"
	"github.com/vzahanych/weather-reply/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type OpenMeteoGeocoder struct {
	baseURL  string
	client   *http.Client
	params   map[string]string
	logger   *zap.Logger
	tele     *telemetry.Telemetry
	recorder CallRecorder
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

func NewOpenMeteoGeocoder(cfg config.UpstreamConfig, timeout time.Duration, logger *zap.Logger, tele *telemetry.Telemetry) *OpenMeteoGeocoder {
	return &OpenMeteoGeocoder{
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		params: cfg.Params,
		logger: logger,
		tele:   tele,
	}
}

func (s *OpenMeteoGeocoder) SetCallRecorder(r CallRecorder) {
	s.recorder = r
}

func (s *OpenMeteoGeocoder) Name() string {
	return "open-meteo-geocoding"
}

// Resolve looks the city up and keeps only the first match.
func (s *OpenMeteoGeocoder) Resolve(ctx context.Context, city, lang string) (*Location, error) {
	ctx, span := s.tele.GetTracer().Start(ctx, "open-meteo.Resolve")
	defer span.End()

	span.SetAttributes(
		attribute.String("city", city),
		attribute.String("language", lang),
		attribute.String("service", s.Name()),
	)

	log := logger.FromContext(ctx, s.logger)

	q := url.Values{}
	for key, value := range s.params {
		q.Set(key, value)
	}
	q.Set("name", city)
	q.Set("count", "1")
	if lang != "" {
		q.Set("language", lang)
	}

	var out geocodingResponse
	if err := getJSON(ctx, s.client, s.baseURL, "/search", q, &out); err != nil {
		s.record(ctx, false)
		span.SetAttributes(attribute.Bool("success", false))
		s.tele.RecordError(ctx, err, map[string]interface{}{"service": s.Name()})
		log.Warn("Geocoding request failed",
			zap.String("city", city),
			zap.Error(err))
		return nil, fmt.Errorf("geocoding: %w", err)
	}

	s.record(ctx, true)

	if len(out.Results) == 0 {
		span.SetAttributes(attribute.Bool("found", false))
		log.Info("No geocoding match", zap.String("city", city), zap.String("language", lang))
		return nil, ErrCityNotFound
	}

	first := out.Results[0]
	loc := &Location{
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
		Name:      first.Name,
		Country:   first.Country,
	}

	span.SetAttributes(
		attribute.Bool("found", true),
		attribute.String("name", loc.Name),
		attribute.String("country", loc.Country),
	)

	log.Debug("Resolved city",
		zap.String("city", city),
		zap.String("name", loc.Name),
		zap.String("country", loc.Country),
		zap.Float64("lat", loc.Latitude),
		zap.Float64("lon", loc.Longitude))

	return loc, nil
}

func (s *OpenMeteoGeocoder) record(ctx context.Context, success bool) {
	if s.recorder != nil {
		s.recorder.RecordUpstreamCall(ctx, s.Name(), success)
	}
}
