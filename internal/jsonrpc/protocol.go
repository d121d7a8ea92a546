// Package jsonrpc implements the small subset of JSON-RPC 2.0 used by the
// /v1/mcp endpoint: single requests, no batches, no notifications.
package jsonrpc

import (
	"bytes"
	"encoding/json"
)

const Version = "2.0"

const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeServerError    = -32000
)

type Request struct {
	JSONRPC string          `json:"jsonrpc" validate:"required,eq=2.0"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method" validate:"required"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// HasID reports whether the request carried a string or number id. Null,
// objects, arrays and booleans are not valid ids.
func (r *Request) HasID() bool {
	id := bytes.TrimSpace(r.ID)
	if len(id) == 0 {
		return false
	}
	switch c := id[0]; {
	case c == '"', c == '-':
		return true
	default:
		return c >= '0' && c <= '9'
	}
}

type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Success(id json.RawMessage, result interface{}) Response {
	return Response{JSONRPC: Version, ID: id, Result: result}
}

func Failure(id json.RawMessage, err *Error) Response {
	return Response{JSONRPC: Version, ID: id, Error: err}
}
