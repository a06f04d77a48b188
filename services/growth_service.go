package services

import (
	"fmt"

	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStockTrader/models"
)

// EstimateMonthlyGrowth emits one growth fraction per calendar month change in the
// series: the close of the first session of a month against the close of the last
// session of the previous one. A trailing year usually yields eleven or twelve rates.
func EstimateMonthlyGrowth(timeSeries techan.TimeSeries) (models.GrowthSequence, error) {
	if len(timeSeries.Candles) == 0 {
		return models.GrowthSequence{}, fmt.Errorf("%w: empty price series", models.ErrDataFetch)
	}

	var rates []float64
	for i := 1; i < len(timeSeries.Candles); i++ {
		previous := timeSeries.Candles[i-1]
		current := timeSeries.Candles[i]
		if sameMonth(previous, current) {
			continue
		}
		previousClose := previous.ClosePrice.Float()
		if previousClose == 0 {
			return models.GrowthSequence{}, fmt.Errorf("%w: zero close price on %s", models.ErrDomain,
				previous.Period.Start.Format(models.DateLayout))
		}
		rates = append(rates, (current.ClosePrice.Float()-previousClose)/previousClose)
	}
	return models.NewGrowthSequence(rates...), nil
}

func sameMonth(a, b *techan.Candle) bool {
	aYear, aMonth, _ := a.Period.Start.Date()
	bYear, bMonth, _ := b.Period.Start.Date()
	return aYear == bYear && aMonth == bMonth
}
