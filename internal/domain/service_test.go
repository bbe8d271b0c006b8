package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		base     int
		discount int
		expected int
	}{
		{"no discount", 1000, 0, 1000},
		{"ten percent", 1000, 10, 900},
		{"rounds half up", 999, 5, 949}, // 949.05 -> 949
		{"rounds up", 150, 33, 101},     // 100.5 -> 101
		{"full discount", 1000, 100, 0},
		{"discount clamped below", 1000, -5, 1000},
		{"discount clamped above", 1000, 150, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Service{BasePrice: tt.base, DiscountPercent: tt.discount}
			assert.Equal(t, tt.expected, s.FinalPrice())
		})
	}
}
