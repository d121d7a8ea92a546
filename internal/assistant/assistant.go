package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vzahanych/weather-reply/internal/config"
	"github.com/vzahanych/weather-reply/internal/language"
	"github.com/vzahanych/weather-reply/internal/reply"
	"github.com/vzahanych/weather-reply/internal/service"
	"github.com/vzahanych/weather-reply/pkg/logger"
	"github.com/vzahanych/weather-reply/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrEmptyCity is returned when the city is blank after trimming.
var ErrEmptyCity = errors.New("missing city field")

type Answer struct {
	Reply      string             `json:"reply"`
	Language   string             `json:"language"`
	Location   service.Location   `json:"location"`
	Conditions service.Conditions `json:"conditions"`
}

// MetricsRecorder interface for recording metrics
type MetricsRecorder interface {
	service.CallRecorder
	RecordLanguage(ctx context.Context, lang string)
}

type Assistant struct {
	detector   *language.Detector
	geocoder   service.Geocoder
	forecaster service.Forecaster
	composer   *reply.Composer
	logger     *zap.Logger
	tele       *telemetry.Telemetry
	metrics    MetricsRecorder
}

// recorderAware is implemented by upstream clients that report their calls.
type recorderAware interface {
	SetCallRecorder(r service.CallRecorder)
}

func NewAssistant(cfg *config.WeatherConfig, logger *zap.Logger, tele *telemetry.Telemetry) *Assistant {
	timeout := time.Duration(cfg.Timeout) * time.Second

	return NewWithServices(
		language.NewDetector(cfg.DefaultLanguage),
		service.NewOpenMeteoGeocoder(cfg.Geocoding, timeout, logger, tele),
		service.NewOpenMeteoForecaster(cfg.Forecast, timeout, logger, tele),
		reply.NewComposer(cfg.DefaultLanguage),
		logger,
		tele,
	)
}

func NewWithServices(detector *language.Detector, geocoder service.Geocoder, forecaster service.Forecaster,
	composer *reply.Composer, logger *zap.Logger, tele *telemetry.Telemetry) *Assistant {
	return &Assistant{
		detector:   detector,
		geocoder:   geocoder,
		forecaster: forecaster,
		composer:   composer,
		logger:     logger,
		tele:       tele,
	}
}

// SetMetricsRecorder sets the metrics recorder for the assistant and its upstream clients
func (a *Assistant) SetMetricsRecorder(metrics MetricsRecorder) {
	a.metrics = metrics

	for _, svc := range []interface{}{a.geocoder, a.forecaster} {
		if ra, ok := svc.(recorderAware); ok {
			ra.SetCallRecorder(metrics)
		}
	}
}

// Ask runs detect, resolve, fetch and compose for one city. The forecast call
// depends on the geocoding result, so the two upstream calls are sequential.
func (a *Assistant) Ask(ctx context.Context, city string) (*Answer, error) {
	ctx, span := a.tele.GetTracer().Start(ctx, "assistant.Ask")
	defer span.End()

	reqLogger := logger.FromContext(ctx, a.logger)

	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	lang := a.detector.Detect(city)
	if a.metrics != nil {
		a.metrics.RecordLanguage(ctx, lang)
	}

	span.SetAttributes(
		attribute.String("city", city),
		attribute.String("language", lang),
	)

	reqLogger.Debug("Detected language", zap.String("city", city), zap.String("language", lang))

	loc, err := a.geocoder.Resolve(ctx, city, lang)
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		if !errors.Is(err, service.ErrCityNotFound) {
			reqLogger.Error("Failed to resolve city", zap.String("city", city), zap.Error(err))
		}
		return nil, err
	}

	cond, err := a.forecaster.Current(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		reqLogger.Error("Failed to fetch current weather",
			zap.String("city", city),
			zap.Float64("lat", loc.Latitude),
			zap.Float64("lon", loc.Longitude),
			zap.Error(err))
		return nil, err
	}

	text := a.composer.Compose(lang, loc.Name, loc.Country, cond.Temperature, cond.WeatherCode)

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("weather_code", cond.WeatherCode),
	)

	reqLogger.Info("Weather reply composed",
		zap.String("city", city),
		zap.String("language", lang),
		zap.String("name", loc.Name),
		zap.String("country", loc.Country),
		zap.Float64("temperature", cond.Temperature),
		zap.Int("weather_code", cond.WeatherCode))

	return &Answer{
		Reply:      text,
		Language:   lang,
		Location:   *loc,
		Conditions: *cond,
	}, nil
}
