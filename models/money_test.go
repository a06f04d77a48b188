package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$102.00", FormatMoney(102, "USD"))
	assert.Equal(t, "$1,234.57", FormatMoney(1234.5678, "USD"))
	assert.Equal(t, "$50.50", FormatMoney(50.5, "usd-unknown"))
	assert.Equal(t, "NaN", FormatMoney(math.NaN(), "USD"))
	// 1.005 is stored just below 1.005, so it rounds down
	assert.Equal(t, "$1.00", FormatMoney(1.005, "USD"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$60123.45", FormatPrice(60123.45, "USD"))
	assert.Equal(t, "$1234.57", FormatPrice(1234.5678, "USD"))
	assert.Equal(t, "$1.00", FormatPrice(1.005, "USD"))
	assert.Equal(t, "$-12.50", FormatPrice(-12.5, "USD"))
	assert.Equal(t, "$50.50", FormatPrice(50.5, "usd-unknown"))
}

func TestIsKnownCurrency(t *testing.T) {
	assert.True(t, IsKnownCurrency("USD"))
	assert.True(t, IsKnownCurrency("EUR"))
	assert.False(t, IsKnownCurrency("XYZ1"))
}

func TestPercent(t *testing.T) {
	p := PercentFromFraction(0.02)
	assert.True(t, p.Equal(2))
	assert.Equal(t, "2.00%", p.String())
	assert.Equal(t, "-1.00%", PercentFromFraction(-0.01).String())
	assert.Equal(t, "+2.00%", p.SignedString())
	assert.False(t, p.Equal(2.001))
}

func TestGrowthSequence(t *testing.T) {
	rates := []float64{0.02, -0.01}
	sequence := NewGrowthSequence(rates...)
	rates[0] = 9

	assert.Equal(t, 2, sequence.Len())
	assert.False(t, sequence.IsEmpty())
	assert.Equal(t, 0.02, sequence.At(0))

	copied := sequence.Rates()
	copied[1] = 9
	assert.Equal(t, -0.01, sequence.At(1))

	assert.True(t, NewGrowthSequence().IsEmpty())
}
