package services

import (
	"errors"
	"testing"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOStockTrader/helpers"
	"gitlab.com/aoterocom/AOStockTrader/models"
)

type dailyClose struct {
	date  string
	price float64
}

func seriesOf(t *testing.T, closes ...dailyClose) techan.TimeSeries {
	t.Helper()
	timeSeries := techan.TimeSeries{}
	for _, c := range closes {
		day, err := time.Parse(models.DateLayout, c.date)
		require.NoError(t, err)
		require.NoError(t, helpers.AddDailyCandle(&timeSeries, day, big.NewDecimal(c.price)))
	}
	return timeSeries
}

func TestEstimateMonthlyGrowth(t *testing.T) {
	timeSeries := seriesOf(t,
		dailyClose{"2024-01-30", 100},
		dailyClose{"2024-01-31", 100},
		dailyClose{"2024-02-01", 110},
		dailyClose{"2024-02-15", 120},
		dailyClose{"2024-02-29", 120},
		dailyClose{"2024-03-01", 108},
	)

	growth, err := EstimateMonthlyGrowth(timeSeries)
	require.NoError(t, err)
	require.Equal(t, 2, growth.Len())
	assert.InDelta(t, 0.10, growth.At(0), 1e-12)
	assert.InDelta(t, -0.10, growth.At(1), 1e-12)
}

func TestEstimateMonthlyGrowthSingleMonth(t *testing.T) {
	growth, err := EstimateMonthlyGrowth(seriesOf(t,
		dailyClose{"2024-05-01", 10},
		dailyClose{"2024-05-02", 12},
	))
	require.NoError(t, err)
	assert.True(t, growth.IsEmpty())
}

func TestEstimateMonthlyGrowthYearChange(t *testing.T) {
	// December to January is a month change even though the month number drops
	growth, err := EstimateMonthlyGrowth(seriesOf(t,
		dailyClose{"2023-12-29", 50},
		dailyClose{"2024-01-02", 55},
	))
	require.NoError(t, err)
	require.Equal(t, 1, growth.Len())
	assert.InDelta(t, 0.1, growth.At(0), 1e-12)

	// same month number, different year
	growth, err = EstimateMonthlyGrowth(seriesOf(t,
		dailyClose{"2023-03-31", 40},
		dailyClose{"2024-03-01", 20},
	))
	require.NoError(t, err)
	require.Equal(t, 1, growth.Len())
	assert.InDelta(t, -0.5, growth.At(0), 1e-12)
}

func TestEstimateMonthlyGrowthEmptySeries(t *testing.T) {
	_, err := EstimateMonthlyGrowth(techan.TimeSeries{})
	assert.True(t, errors.Is(err, models.ErrDataFetch))
}

func TestEstimateMonthlyGrowthZeroClose(t *testing.T) {
	_, err := EstimateMonthlyGrowth(seriesOf(t,
		dailyClose{"2024-01-31", 0},
		dailyClose{"2024-02-01", 10},
	))
	assert.True(t, errors.Is(err, models.ErrDomain))
}

func TestRateForMonth(t *testing.T) {
	growth := models.NewGrowthSequence(0.02, -0.01, 0.03)
	for month, expected := range []float64{0.02, -0.01, 0.03, 0.02, -0.01, 0.03, 0.02} {
		rate, err := RateForMonth(growth, month)
		require.NoError(t, err)
		assert.Equal(t, expected, rate, "month %d", month)
	}

	_, err := RateForMonth(models.NewGrowthSequence(), 0)
	assert.True(t, errors.Is(err, models.ErrDomain))
	_, err = RateForMonth(growth, -1)
	assert.True(t, errors.Is(err, models.ErrDomain))
}

func TestRateForMonthIsPeriodic(t *testing.T) {
	growth := models.NewGrowthSequence(0.05, 0.01, -0.02, 0.04, 0.0)
	for month := 0; month < 40; month++ {
		rate, err := RateForMonth(growth, month)
		require.NoError(t, err)
		later, err := RateForMonth(growth, month+growth.Len())
		require.NoError(t, err)
		assert.Equal(t, rate, later)
	}
}
