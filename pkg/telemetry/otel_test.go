package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vzahanych/weather-reply/internal/config"
)

func TestDisabledTelemetryUsesNoopTracer(t *testing.T) {
	tele, err := New(context.Background(), config.TelemetryConfig{Enabled: false}, "test")
	require.NoError(t, err)

	assert.False(t, tele.IsEnabled())

	_, span := tele.GetTracer().Start(context.Background(), "op")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	tele.RecordError(context.Background(), errors.New("boom"), nil)
	assert.NoError(t, tele.Shutdown(context.Background()))
}

func TestNilTelemetryIsSafe(t *testing.T) {
	var tele *Telemetry

	assert.False(t, tele.IsEnabled())
	assert.NotNil(t, tele.GetTracer())
	tele.RecordError(context.Background(), errors.New("boom"), map[string]interface{}{"k": 1})
	assert.NoError(t, tele.Shutdown(context.Background()))
}
