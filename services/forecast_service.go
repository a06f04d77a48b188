package services

import (
	"fmt"

	"gitlab.com/aoterocom/AOStockTrader/models"
)

// RateForMonth replays the observed growth cycle: month m gets the rate observed at
// m modulo the sequence length, so any horizon can be forecast from one year of history.
func RateForMonth(growth models.GrowthSequence, month int) (float64, error) {
	if growth.IsEmpty() {
		return 0, fmt.Errorf("%w: no growth rate to forecast month %d from", models.ErrDomain, month)
	}
	if month < 0 {
		return 0, fmt.Errorf("%w: negative month index %d", models.ErrDomain, month)
	}
	return growth.At(month % growth.Len()), nil
}
