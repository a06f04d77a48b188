package ui

import (
	"math"

	"gitlab.com/aoterocom/AOStockTrader/models"
)

// ChartTitle and the axis titles are shared by the chart renderers.
const (
	ChartTitle  = "Predicted Growth Trends by Symbol"
	ChartXTitle = "Date"
	ChartYTitle = "Growth Percentage (%)"
)

// TrendSeries is the line of one symbol in the growth chart.
type TrendSeries struct {
	Symbol string
	Dates  []string
	Values []float64 // growth in percent
}

// GroupTrends splits the points by symbol, symbols in first encounter order and
// points in recording order.
func GroupTrends(points []models.TrendPoint) []TrendSeries {
	var groups []TrendSeries
	index := make(map[string]int)
	for _, point := range points {
		i, ok := index[point.Symbol]
		if !ok {
			i = len(groups)
			index[point.Symbol] = i
			groups = append(groups, TrendSeries{Symbol: point.Symbol})
		}
		groups[i].Dates = append(groups[i].Dates, point.Date.Format(models.DateLayout))
		groups[i].Values = append(groups[i].Values, float64(point.GrowthPercent))
	}
	return groups
}

// chartDates returns every date of the series once, in first encounter order.
func chartDates(groups []TrendSeries) []string {
	var dates []string
	seen := make(map[string]bool)
	for _, group := range groups {
		for _, date := range group.Dates {
			if !seen[date] {
				seen[date] = true
				dates = append(dates, date)
			}
		}
	}
	return dates
}

// valueRange returns the lowest and highest growth of all series. Both are 0 when
// there is no point.
func valueRange(groups []TrendSeries) (low, high float64) {
	low, high = math.Inf(1), math.Inf(-1)
	for _, group := range groups {
		for _, v := range group.Values {
			low = math.Min(low, v)
			high = math.Max(high, v)
		}
	}
	if math.IsInf(low, 1) {
		return 0, 0
	}
	return low, high
}
