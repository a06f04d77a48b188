package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sdcoffey/techan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOStockTrader/mocks"
	"gitlab.com/aoterocom/AOStockTrader/models"
	"gitlab.com/aoterocom/AOStockTrader/models/analytics"
)

var lookback = 365 * 24 * time.Hour

func lowTierMock() *mocks.ProviderMock {
	providerMock := mocks.NewProviderMock()
	first := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	providerMock.AddMonthlyCloses("AAA", first, 100, 102, 100.98)
	providerMock.AddMonthlyCloses("BBB", first, 50, 50.5)
	return providerMock
}

func TestMarketAnalysisServiceRun(t *testing.T) {
	providerMock := lowTierMock()
	tiers := models.NewTierTable(map[models.RiskTier][]string{models.RiskTierLow: {"AAA", "BBB"}})
	service := NewMarketAnalysisService(providerMock, tiers, lookback)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	result, err := service.Run(context.Background(), analytics.SimulationRequest{
		MonthlyInvestment: 1000,
		Risk:              0.5,
		Months:            3,
		StartDate:         start,
	})
	require.NoError(t, err)

	assert.Equal(t, models.RiskTierLow, result.Tier)
	assert.Equal(t, []string{"AAA", "BBB"}, result.Symbols)
	require.Len(t, result.Purchases, 3)
	assert.Len(t, result.Trends, 6)

	// AAA cycles +2%, -1% from its last close 100.98; BBB repeats +1% from 50.5
	assert.Equal(t, "AAA", result.Purchases[0].Symbol)
	assert.InDelta(t, 100.98*1.02, result.Purchases[0].Price, 1e-9)
	assert.Equal(t, "BBB", result.Purchases[1].Symbol)
	assert.InDelta(t, 50.5*1.01, result.Purchases[1].Price, 1e-9)
	assert.Equal(t, "AAA", result.Purchases[2].Symbol)

	require.Len(t, result.Holdings, 2)
	assert.Equal(t, "AAA", result.Holdings[0].Symbol)
	assert.Equal(t, 2, result.Holdings[0].Purchases)
	assert.InDelta(t, 3000, result.TotalInvested(), 1e-9)

	require.Len(t, providerMock.Requests, 2)
	assert.Equal(t, start, providerMock.Requests[0].To)
	assert.Equal(t, start.Add(-lookback), providerMock.Requests[0].From)
}

func TestMarketAnalysisServiceRunFetchError(t *testing.T) {
	providerMock := lowTierMock()
	providerMock.Errors["BBB"] = errors.New("connection refused")
	tiers := models.NewTierTable(map[models.RiskTier][]string{models.RiskTierLow: {"AAA", "BBB"}})
	service := NewMarketAnalysisService(providerMock, tiers, lookback)

	_, err := service.Run(context.Background(), analytics.SimulationRequest{Risk: 0.5, Months: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BBB")
}

func TestAnalyzeSymbolEmptySeries(t *testing.T) {
	providerMock := mocks.NewProviderMock()
	providerMock.Series["EMPTY"] = techan.TimeSeries{}
	service := NewMarketAnalysisService(providerMock, models.DefaultTierTable(), lookback)

	_, err := service.AnalyzeSymbol(context.Background(), "EMPTY", time.Now())
	assert.True(t, errors.Is(err, models.ErrDataFetch))
}

func TestAnalyzeSymbolWithoutMonthChange(t *testing.T) {
	providerMock := mocks.NewProviderMock()
	providerMock.AddCloses("FLAT", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), 10, 11, 12)
	tiers := models.NewTierTable(map[models.RiskTier][]string{models.RiskTierMedium: {"FLAT"}})
	service := NewMarketAnalysisService(providerMock, tiers, lookback)

	analysis, err := service.AnalyzeSymbol(context.Background(), "FLAT", time.Now())
	require.NoError(t, err)
	assert.True(t, analysis.Growth.IsEmpty())
	assert.Equal(t, 12.0, analysis.LastPrice)

	// a symbol without any rate cannot be simulated
	_, err = service.Run(context.Background(), analytics.SimulationRequest{Risk: 1, Months: 1})
	assert.True(t, errors.Is(err, models.ErrConfiguration))
}
