package services

import (
	"time"

	"gitlab.com/aoterocom/AOStockTrader/models"
)

// TrendRecorder accumulates every forecast the simulation evaluates, bought or not,
// for the growth chart.
type TrendRecorder struct {
	points []models.TrendPoint
}

// NewTrendRecorder returns an empty recorder.
func NewTrendRecorder() *TrendRecorder {
	return &TrendRecorder{}
}

// Record stores the forecast growth fraction of symbol for the month starting at date.
func (tr *TrendRecorder) Record(date time.Time, symbol string, growth float64) {
	tr.points = append(tr.points, models.TrendPoint{
		Date:          date,
		Symbol:        symbol,
		GrowthPercent: models.PercentFromFraction(growth),
	})
}

// Points returns the recorded points in recording order.
func (tr *TrendRecorder) Points() []models.TrendPoint {
	return append([]models.TrendPoint(nil), tr.points...)
}

// Len returns the number of recorded points.
func (tr *TrendRecorder) Len() int { return len(tr.points) }
