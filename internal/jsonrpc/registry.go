package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

// MethodFunc handles one method call. Returning an *Error controls the
// response code; any other error is reported as CodeServerError.
type MethodFunc func(ctx context.Context, params json.RawMessage) (interface{}, error)

// Registry maps method names to handlers and is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	methods  map[string]MethodFunc
	validate *validator.Validate
}

func NewRegistry() *Registry {
	return &Registry{
		methods:  make(map[string]MethodFunc),
		validate: validator.New(),
	}
}

// Register adds fn under name, replacing any previous handler.
func (r *Registry) Register(name string, fn MethodFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods[name] = fn
}

func (r *Registry) Get(name string) (MethodFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.methods[name]
	return fn, ok
}

// Handle decodes a raw request body and dispatches it.
func (r *Registry) Handle(ctx context.Context, body []byte) Response {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return Failure(nil, NewError(CodeInvalidRequest, "Invalid Request: body is not a JSON-RPC object"))
	}
	return r.Dispatch(ctx, &req)
}

// Dispatch validates the envelope and runs the named method.
func (r *Registry) Dispatch(ctx context.Context, req *Request) Response {
	var id json.RawMessage
	if req.HasID() {
		id = req.ID
	}

	if err := r.validate.Struct(req); err != nil || !req.HasID() {
		return Failure(id, NewError(CodeInvalidRequest, "Invalid Request"))
	}

	fn, ok := r.Get(req.Method)
	if !ok {
		return Failure(id, NewError(CodeMethodNotFound, "Method not found"))
	}

	result, err := fn(ctx, req.Params)
	if err != nil {
		var rpcErr *Error
		if errors.As(err, &rpcErr) {
			return Failure(id, rpcErr)
		}
		return Failure(id, NewError(CodeServerError, err.Error()))
	}

	return Success(id, result)
}
