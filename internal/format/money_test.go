package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/FurniProfit/internal/model"
)

func TestMoneyFormat(t *testing.T) {
	m := NewMoney("S/")

	tests := []struct {
		in   string
		want string
	}{
		{"0", "S/ 0.00"},
		{"157.5", "S/ 157.50"},
		{"1234.5", "S/ 1,234.50"},
		{"1234567.891", "S/ 1,234,567.89"},
		{"35.005", "S/ 35.01"},
		{"-225", "S/ -225.00"},
		{"0.3333333333333333", "S/ 0.33"},
		{"-0.004", "S/ 0.00"},
		{"999.995", "S/ 1,000.00"},
		{"9007199254740993.07", "S/ 9,007,199,254,740,993.07"},
		{"123456789012345678901.555", "S/ 123,456,789,012,345,678,901.56"},
		{"-98765432109876543210", "S/ -98,765,432,109,876,543,210.00"},
	}
	for _, tt := range tests {
		got := m.Format(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got, "Format(%s)", tt.in)
	}
}

func TestMoneyWithoutSymbol(t *testing.T) {
	m := NewMoney("  ")
	assert.Equal(t, "52.50", m.Format(decimal.RequireFromString("52.5")))
}

func TestRound(t *testing.T) {
	assert.True(t, Round(decimal.RequireFromString("2.675")).Equal(decimal.RequireFromString("2.68")))
	assert.True(t, Round(decimal.RequireFromString("-2.675")).Equal(decimal.RequireFromString("-2.68")))
	assert.True(t, Round(decimal.RequireFromString("-0.001")).IsZero())
}

func TestPricingParam(t *testing.T) {
	m := NewMoney("S/")
	d := decimal.RequireFromString("45")

	assert.Equal(t, "-", m.PricingParam(model.PricingRecommended, d))
	assert.Equal(t, "45.00%", m.PricingParam(model.PricingPercentage, d))
	assert.Equal(t, "S/ 45.00", m.PricingParam(model.PricingFixedProfit, d))
	assert.Equal(t, "S/ 45.00", m.PricingParam(model.PricingManualPrice, d))
}
