package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	r := NewRegistry()
	r.Register("echo", func(_ context.Context, params json.RawMessage) (interface{}, error) {
		var p map[string]string
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, NewError(CodeInvalidParams, "Invalid params")
		}
		return p, nil
	})
	r.Register("fail", func(context.Context, json.RawMessage) (interface{}, error) {
		return nil, errors.New("city not found")
	})
	return r
}

func TestHandleSuccess(t *testing.T) {
	resp := newTestRegistry().Handle(context.Background(),
		[]byte(`{"jsonrpc":"2.0","id":7,"method":"echo","params":{"city":"Paris"}}`))

	require.Nil(t, resp.Error)
	assert.Equal(t, Version, resp.JSONRPC)
	assert.JSONEq(t, `7`, string(resp.ID))
	assert.Equal(t, map[string]string{"city": "Paris"}, resp.Result)
}

func TestHandleEnvelopeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
		id   string
	}{
		{"unknown method", `{"jsonrpc":"2.0","id":1,"method":"ping"}`, CodeMethodNotFound, `1`},
		{"missing id", `{"jsonrpc":"2.0","method":"echo","params":{}}`, CodeInvalidRequest, ``},
		{"null id", `{"jsonrpc":"2.0","id":null,"method":"echo"}`, CodeInvalidRequest, ``},
		{"object id", `{"jsonrpc":"2.0","id":{"a":1},"method":"echo"}`, CodeInvalidRequest, ``},
		{"array id", `{"jsonrpc":"2.0","id":[1],"method":"echo"}`, CodeInvalidRequest, ``},
		{"boolean id", `{"jsonrpc":"2.0","id":true,"method":"echo"}`, CodeInvalidRequest, ``},
		{"wrong version", `{"jsonrpc":"1.0","id":"a","method":"echo"}`, CodeInvalidRequest, `"a"`},
		{"missing version", `{"id":"a","method":"echo"}`, CodeInvalidRequest, `"a"`},
		{"missing method", `{"jsonrpc":"2.0","id":2}`, CodeInvalidRequest, `2`},
		{"not json", `{{{`, CodeInvalidRequest, ``},
		{"array body", `[{"jsonrpc":"2.0","id":1,"method":"echo"}]`, CodeInvalidRequest, ``},
		{"bad params", `{"jsonrpc":"2.0","id":3,"method":"echo","params":[1]}`, CodeInvalidParams, `3`},
		{"method failure", `{"jsonrpc":"2.0","id":4,"method":"fail"}`, CodeServerError, `4`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := newTestRegistry().Handle(context.Background(), []byte(tt.body))

			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Nil(t, resp.Result)
			if tt.id == "" {
				assert.Nil(t, resp.ID)
			} else {
				assert.JSONEq(t, tt.id, string(resp.ID))
			}
		})
	}
}

func TestMethodErrorMessageIsPropagated(t *testing.T) {
	resp := newTestRegistry().Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":"x","method":"fail"}`))

	require.NotNil(t, resp.Error)
	assert.Equal(t, "city not found", resp.Error.Message)
}

func TestResponseMarshalsNullID(t *testing.T) {
	raw, err := json.Marshal(Failure(nil, NewError(CodeInvalidRequest, "Invalid Request")))
	require.NoError(t, err)

	assert.JSONEq(t, `{"jsonrpc":"2.0","id":null,"error":{"code":-32600,"message":"Invalid Request"}}`, string(raw))
}

func TestHandleAcceptsStringAndNumberIDs(t *testing.T) {
	for _, id := range []string{`"abc"`, `7`, `-3`, `0.5`, ` "spaced"`} {
		resp := newTestRegistry().Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":`+id+`,"method":"echo","params":{}}`))

		assert.Nil(t, resp.Error, id)
		assert.JSONEq(t, id, string(resp.ID), id)
	}
}
