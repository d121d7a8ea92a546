package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cityRequest struct {
	City string `json:"city" validate:"required,city"`
}

func TestValidateCity(t *testing.T) {
	tests := []struct {
		name string
		city string
		tag  string
	}{
		{"valid", "Paris", ""},
		{"valid cjk", "東京", ""},
		{"empty", "", "required"},
		{"blank", "   ", "city"},
		{"tabs and newlines", "\t\n", "city"},
		{"long name", strings.Repeat("Llanfair", 40), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(cityRequest{City: tt.city})
			if tt.tag == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "city", errs[0].Field)
			assert.Equal(t, tt.tag, errs[0].Tag)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}
