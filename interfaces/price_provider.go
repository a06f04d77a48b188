package interfaces

import (
	"context"
	"time"

	"github.com/sdcoffey/techan"
)

// PriceProvider returns the daily closing prices of a symbol between two dates,
// oldest first, one candle per trading day.
type PriceProvider interface {
	Name() string
	GetSeries(ctx context.Context, symbol string, from, to time.Time) (techan.TimeSeries, error)
}
