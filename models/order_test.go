package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOrderStatus(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Completed", StatusCompleted, true},
		{"completed", StatusCompleted, true},
		{"  scheduled pickup ", StatusScheduledPickup, true},
		{"PROCESSING", StatusProcessing, true},
		{"Ready", StatusReady, true},
		{"Done", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeOrderStatus(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
