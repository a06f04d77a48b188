package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStockTrader/helpers"
	"gitlab.com/aoterocom/AOStockTrader/models"
)

// SeriesRequest is one GetSeries call seen by a ProviderMock.
type SeriesRequest struct {
	Symbol string
	From   time.Time
	To     time.Time
}

// ProviderMock serves canned series and records what it was asked for.
type ProviderMock struct {
	Series   map[string]techan.TimeSeries
	Errors   map[string]error
	Requests []SeriesRequest
}

func NewProviderMock() *ProviderMock {
	return &ProviderMock{
		Series: make(map[string]techan.TimeSeries),
		Errors: make(map[string]error),
	}
}

func (providerMock *ProviderMock) Name() string { return "mock" }

// AddCloses registers one close per day for symbol, starting at first.
func (providerMock *ProviderMock) AddCloses(symbol string, first time.Time, closes ...float64) {
	timeSeries := techan.TimeSeries{}
	for i, closePrice := range closes {
		if err := helpers.AddDailyCandle(&timeSeries, first.AddDate(0, 0, i), big.NewDecimal(closePrice)); err != nil {
			panic(err)
		}
	}
	providerMock.Series[symbol] = timeSeries
}

// AddMonthlyCloses registers one close on the first day of each month for symbol,
// starting at the month of first.
func (providerMock *ProviderMock) AddMonthlyCloses(symbol string, first time.Time, closes ...float64) {
	timeSeries := techan.TimeSeries{}
	for i, closePrice := range closes {
		if err := helpers.AddDailyCandle(&timeSeries, first.AddDate(0, i, 0), big.NewDecimal(closePrice)); err != nil {
			panic(err)
		}
	}
	providerMock.Series[symbol] = timeSeries
}

func (providerMock *ProviderMock) GetSeries(_ context.Context, symbol string, from, to time.Time) (techan.TimeSeries, error) {
	providerMock.Requests = append(providerMock.Requests, SeriesRequest{Symbol: symbol, From: from, To: to})
	if err := providerMock.Errors[symbol]; err != nil {
		return techan.TimeSeries{}, err
	}
	timeSeries, ok := providerMock.Series[symbol]
	if !ok {
		return techan.TimeSeries{}, fmt.Errorf("%w: mock has no series for %s", models.ErrDataFetch, symbol)
	}
	return timeSeries, nil
}
