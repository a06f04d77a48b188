package helpers

import (
	"fmt"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStockTrader/models"
)

// TradingDay returns midnight UTC of the calendar date t has in its own location.
// Daily candles are keyed by this value so that exchange time zones and daylight
// saving changes never reorder two consecutive sessions.
func TradingDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddDailyCandle appends a one day candle closing at closePrice to timeSeries.
// It fails with models.ErrDataFetch when day is not after the last candle.
func AddDailyCandle(timeSeries *techan.TimeSeries, day time.Time, closePrice big.Decimal) error {
	period := techan.NewTimePeriod(TradingDay(day), 24*time.Hour)
	candle := techan.NewCandle(period)
	candle.OpenPrice = closePrice
	candle.ClosePrice = closePrice
	candle.MaxPrice = closePrice
	candle.MinPrice = closePrice
	if !timeSeries.AddCandle(candle) {
		return fmt.Errorf("%w: candle %s is not after %s", models.ErrDataFetch,
			period.Start.Format(models.DateLayout), timeSeries.LastCandle().Period.Start.Format(models.DateLayout))
	}
	return nil
}
