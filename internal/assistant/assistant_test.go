package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vzahanych/weather-reply/internal/config"
	"github.com/vzahanych/weather-reply/internal/language"
	"github.com/vzahanych/weather-reply/internal/reply"
	"github.com/vzahanych/weather-reply/internal/service"
	"github.com/vzahanych/weather-reply/pkg/telemetry"
	"go.uber.org/zap/zaptest"
)

type fakeGeocoder struct {
	loc      *service.Location
	err      error
	gotCity  string
	gotLang  string
	recorder service.CallRecorder
}

func (f *fakeGeocoder) Resolve(_ context.Context, city, lang string) (*service.Location, error) {
	f.gotCity, f.gotLang = city, lang
	return f.loc, f.err
}

func (f *fakeGeocoder) Name() string { return "fake-geocoder" }

func (f *fakeGeocoder) SetCallRecorder(r service.CallRecorder) { f.recorder = r }

type fakeForecaster struct {
	cond   *service.Conditions
	err    error
	called bool
	gotLat float64
	gotLon float64
}

func (f *fakeForecaster) Current(_ context.Context, lat, lon float64) (*service.Conditions, error) {
	f.called = true
	f.gotLat, f.gotLon = lat, lon
	return f.cond, f.err
}

func (f *fakeForecaster) Name() string { return "fake-forecaster" }

type fakeMetrics struct {
	mu        sync.Mutex
	languages []string
}

func (m *fakeMetrics) RecordUpstreamCall(context.Context, string, bool) {}

func (m *fakeMetrics) RecordLanguage(_ context.Context, lang string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.languages = append(m.languages, lang)
}

func newTestAssistant(t *testing.T, g *fakeGeocoder, f *fakeForecaster) *Assistant {
	inconclusive := func(string) (string, bool) { return "", false }
	detector := language.NewDetector("en", append([]language.Rule{inconclusive}, language.DefaultRules()[1:]...)...)

	return NewWithServices(detector, g, f, reply.NewComposer("en"), zaptest.NewLogger(t), &telemetry.Telemetry{})
}

func TestAskComposesReply(t *testing.T) {
	g := &fakeGeocoder{loc: &service.Location{Latitude: 48.85, Longitude: 2.35, Name: "Paris", Country: "France"}}
	f := &fakeForecaster{cond: &service.Conditions{Temperature: 17.4, WeatherCode: 3}}
	a := newTestAssistant(t, g, f)

	answer, err := a.Ask(context.Background(), "  Paris ")
	require.NoError(t, err)

	assert.Equal(t, "Paris", g.gotCity)
	assert.Equal(t, "en", g.gotLang)
	assert.Equal(t, 48.85, f.gotLat)
	assert.Equal(t, 2.35, f.gotLon)
	assert.Equal(t, "en", answer.Language)
	assert.Equal(t, "The current temperature in Paris, France is 17.4°C with overcast.", answer.Reply)
	assert.Equal(t, "France", answer.Location.Country)
	assert.Equal(t, 3, answer.Conditions.WeatherCode)
}

func TestAskUsesDetectedLanguage(t *testing.T) {
	g := &fakeGeocoder{loc: &service.Location{Name: "北京", Country: "中国"}}
	f := &fakeForecaster{cond: &service.Conditions{Temperature: 21, WeatherCode: 0}}
	a := newTestAssistant(t, g, f)

	metrics := &fakeMetrics{}
	a.SetMetricsRecorder(metrics)

	answer, err := a.Ask(context.Background(), "北京")
	require.NoError(t, err)

	assert.Equal(t, "zh", g.gotLang)
	assert.Equal(t, "北京, 中国 当前温度是 21°C，天气晴朗。", answer.Reply)
	assert.Equal(t, []string{"zh"}, metrics.languages)
	assert.Same(t, metrics, g.recorder)
}

func TestAskEmptyCity(t *testing.T) {
	g := &fakeGeocoder{}
	f := &fakeForecaster{}
	a := newTestAssistant(t, g, f)

	_, err := a.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyCity)
	assert.Empty(t, g.gotCity)
}

func TestAskCityNotFoundSkipsForecast(t *testing.T) {
	g := &fakeGeocoder{err: service.ErrCityNotFound}
	f := &fakeForecaster{}
	a := newTestAssistant(t, g, f)

	_, err := a.Ask(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, service.ErrCityNotFound)
	assert.False(t, f.called)
}

func TestAskForecastFailure(t *testing.T) {
	upstream := errors.New("forecast: API request failed with status: 503")
	g := &fakeGeocoder{loc: &service.Location{Name: "Oslo", Country: "Norway"}}
	f := &fakeForecaster{err: upstream}
	a := newTestAssistant(t, g, f)

	_, err := a.Ask(context.Background(), "Oslo")
	assert.ErrorIs(t, err, upstream)
}

func TestNewAssistantFromConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()
	a := NewAssistant(&cfg.Weather, zaptest.NewLogger(t), &telemetry.Telemetry{})

	require.NotNil(t, a)
	assert.Equal(t, "open-meteo-geocoding", a.geocoder.Name())
	assert.Equal(t, "open-meteo-forecast", a.forecaster.Name())
	assert.Equal(t, "en", a.detector.DefaultLanguage())
}
