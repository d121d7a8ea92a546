package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/weather-reply/internal/jsonrpc"
	"github.com/vzahanych/weather-reply/internal/server/utils"
	"github.com/vzahanych/weather-reply/internal/service"
	"github.com/vzahanych/weather-reply/pkg/logger"
	"go.uber.org/zap"
)

const (
	WeatherMethod = "weather"
	maxRPCBody    = 1 << 20
)

// RPCHandler serves the JSON-RPC endpoint. Protocol errors are reported in
// the envelope, so the HTTP status is always 200.
type RPCHandler struct {
	assistant Asker
	registry  *jsonrpc.Registry
	logger    *zap.Logger
}

func NewRPCHandler(a Asker, logger *zap.Logger) *RPCHandler {
	h := &RPCHandler{
		assistant: a,
		registry:  jsonrpc.NewRegistry(),
		logger:    logger,
	}
	h.registry.Register(WeatherMethod, h.weather)
	return h
}

func (h *RPCHandler) Serve(c *gin.Context) {
	ctx := utils.GetContextFromGinContext(c)
	reqLogger := logger.FromContext(ctx, h.logger)

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRPCBody))
	if err != nil {
		reqLogger.Warn("Failed to read JSON-RPC body", zap.Error(err))
		c.JSON(http.StatusOK, jsonrpc.Failure(nil, jsonrpc.NewError(jsonrpc.CodeInvalidRequest, "Invalid Request")))
		return
	}

	resp := h.registry.Handle(ctx, body)
	if resp.Error != nil {
		reqLogger.Warn("JSON-RPC call failed",
			zap.Int("code", resp.Error.Code),
			zap.String("message", resp.Error.Message))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RPCHandler) weather(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req WeatherRequest
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, jsonrpc.NewError(jsonrpc.CodeInvalidParams, "Invalid params")
		}
	}

	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		return nil, errors.New("Missing city field")
	}

	answer, err := h.assistant.Ask(ctx, req.City)
	if err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			return nil, errors.New("City not found")
		}
		return nil, err
	}

	return WeatherResponse{Reply: answer.Reply}, nil
}
