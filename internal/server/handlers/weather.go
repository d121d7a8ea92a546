package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/weather-reply/internal/assistant"
	"github.com/vzahanych/weather-reply/internal/server/utils"
	"github.com/vzahanych/weather-reply/internal/service"
	"github.com/vzahanych/weather-reply/pkg/logger"
	"go.uber.org/zap"
)

// Asker is the pipeline the weather handlers front.
type Asker interface {
	Ask(ctx context.Context, city string) (*assistant.Answer, error)
}

type WeatherHandler struct {
	assistant Asker
	logger    *zap.Logger
}

func NewWeatherHandler(a Asker, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		assistant: a,
		logger:    logger,
	}
}

func (h *WeatherHandler) PostWeather(c *gin.Context) {
	ctx := utils.GetContextFromGinContext(c)
	reqLogger := logger.FromContext(ctx, h.logger)

	var req WeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reqLogger.Warn("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Missing city field",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return
	}

	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		reqLogger.Warn("Invalid request parameters", zap.String("reason", verrs[0].Message))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Missing city field",
			Code:    "INVALID_PARAMS",
			Details: verrs[0].Message,
		})
		return
	}

	reqLogger.Info("Processing weather request", zap.String("city", req.City))

	answer, err := h.assistant.Ask(ctx, req.City)
	switch {
	case errors.Is(err, service.ErrCityNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "City not found",
			Code:  "CITY_NOT_FOUND",
		})
		return
	case errors.Is(err, assistant.ErrEmptyCity):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Missing city field",
			Code:  "INVALID_PARAMS",
		})
		return
	case err != nil:
		reqLogger.Error("Failed to answer weather request", zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Weather query failed",
			Code:  "UPSTREAM_ERROR",
		})
		return
	}

	reqLogger.Info("Weather request completed successfully",
		zap.String("city", req.City),
		zap.String("language", answer.Language))

	c.JSON(http.StatusOK, WeatherResponse{Reply: answer.Reply})
}
