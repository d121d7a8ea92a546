package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	version     string
	environment string
	startTime   time.Time
	ready       func() bool
}

// NewHealthHandler builds the probe handlers. ready may be nil, in which case
// the service reports ready as soon as it is serving.
func NewHealthHandler(version, environment string, ready func() bool) *HealthHandler {
	return &HealthHandler{
		version:     version,
		environment: environment,
		startTime:   time.Now(),
		ready:       ready,
	}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "alive",
		Uptime: time.Since(h.startTime).String(),
	})
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.ready != nil && !h.ready() {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Uptime: time.Since(h.startTime).String(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status: "ready",
		Uptime: time.Since(h.startTime).String(),
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Uptime:      time.Since(h.startTime).String(),
		Version:     h.version,
		Environment: h.environment,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}
