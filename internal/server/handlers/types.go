package handlers

// WeatherRequest is the body of POST /weather and the params of the
// "weather" JSON-RPC method.
type WeatherRequest struct {
	City string `json:"city" validate:"required,city"`
}

// WeatherResponse carries the composed sentence.
type WeatherResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status      string `json:"status"`
	Uptime      string `json:"uptime"`
	Version     string `json:"version,omitempty"`
	Environment string `json:"environment,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}
