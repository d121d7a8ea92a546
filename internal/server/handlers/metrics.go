package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler holds application-level metrics and exposes everything
// registered on its registry in Prometheus text format.
type MetricsHandler struct {
	upstreamCalls  *prometheus.CounterVec
	upstreamErrors *prometheus.CounterVec
	languages      *prometheus.CounterVec
	handler        gin.HandlerFunc
}

func NewMetricsHandler(reg *prometheus.Registry) *MetricsHandler {
	h := &MetricsHandler{
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_calls_total",
			Help: "Total upstream API calls",
		}, []string{"service"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_errors_total",
			Help: "Total failed upstream API calls",
		}, []string{"service"}),
		languages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "detected_language_total",
			Help: "Requests per detected language",
		}, []string{"language"}),
		handler: gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
	}
	reg.MustRegister(h.upstreamCalls, h.upstreamErrors, h.languages)
	return h
}

// RecordUpstreamCall records a geocoding or forecast API call
func (h *MetricsHandler) RecordUpstreamCall(ctx context.Context, service string, success bool) {
	h.upstreamCalls.WithLabelValues(service).Inc()
	if !success {
		h.upstreamErrors.WithLabelValues(service).Inc()
	}
}

// RecordLanguage counts the language detected for a request
func (h *MetricsHandler) RecordLanguage(ctx context.Context, lang string) {
	h.languages.WithLabelValues(lang).Inc()
}

func (h *MetricsHandler) ServeMetrics(c *gin.Context) {
	h.handler(c)
}
