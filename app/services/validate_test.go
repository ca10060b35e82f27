package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTimeFormat(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"08:00", true},
		{"23:59", true},
		{"8:00", false},
		{"08:00:00", false},
		{"0800", false},
		{"ab:cd", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidateTimeFormat(tt.in), "input %q", tt.in)
	}
}
