package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateFee(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		weight   float64
		delivery float64
		want     float64
	}{
		{"wdf long label matches by prefix", "WDF (Wash, Dry, Fold)", 10, 0, 5000},
		{"wdi with delivery", "WDI (Wash, Dry, Iron)", 2, 300, 1700},
		{"iron only", "Iron Only", 4, 0, 800},
		{"bedding with fractional weight", "Bedding", 1.5, 500, 2300},
		{"unknown service falls back to default rate", "Dry Cleaning", 3, 0, 1500},
		{"zero weight charges delivery only", "WDF", 0, 400, 400},
		{"all zero", "Bedding", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateFee(tt.service, tt.weight, tt.delivery)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
