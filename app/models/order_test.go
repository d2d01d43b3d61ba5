package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected int64
	}{
		{"Whole amount", 500, 50000},
		{"Two decimals", 499.99, 49999},
		{"Rounds up", 10.005, 1001},
		{"Float artifact", 0.1 + 0.2, 30},
		{"Small price", 0.01, 1},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AmountMinorUnits(tt.price))
		})
	}
}

func TestOrder_IsPaid(t *testing.T) {
	assert.False(t, (&Order{Status: OrderStatusPending}).IsPaid())
	assert.False(t, (&Order{Status: OrderStatusFailed}).IsPaid())
	assert.True(t, (&Order{Status: OrderStatusPaid}).IsPaid())
}
