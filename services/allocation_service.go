package services

import (
	"fmt"
	"math"
	"time"

	"gitlab.com/aoterocom/AOStockTrader/models"
)

// monthDays is the length of a simulated month. Months are flat 30 day steps from
// the start date, not calendar months.
const monthDays = 30

// SimulationInput is everything a simulation run needs. Symbols order is the
// tie-break order: on equal forecasts the symbol listed first is bought.
type SimulationInput struct {
	Symbols           []string
	Growth            map[string]models.GrowthSequence
	InitialPrices     map[string]float64
	MonthlyInvestment float64
	Months            int
	StartDate         time.Time
}

// Simulate buys, every month, the symbol whose cyclical forecast is the highest.
// Only the bought symbol's synthetic price moves: it compounds by its forecast rate.
// It also returns the forecast of every symbol for every month, recorded before
// any selection happens.
func Simulate(in SimulationInput) ([]models.PurchaseRecord, []models.TrendPoint, error) {
	if err := validateSimulationInput(in); err != nil {
		return nil, nil, err
	}

	prices := make(map[string]float64, len(in.Symbols))
	for _, symbol := range in.Symbols {
		prices[symbol] = in.InitialPrices[symbol]
	}

	recorder := NewTrendRecorder()
	for _, symbol := range in.Symbols {
		for month := 0; month < in.Months; month++ {
			rate, err := RateForMonth(in.Growth[symbol], month)
			if err != nil {
				return nil, nil, err
			}
			recorder.Record(monthDate(in.StartDate, month), symbol, rate)
		}
	}

	var purchases []models.PurchaseRecord
	for month := 0; month < in.Months; month++ {
		bestSymbol := ""
		bestRate := math.Inf(-1)
		for _, symbol := range in.Symbols {
			rate, err := RateForMonth(in.Growth[symbol], month)
			if err != nil {
				return nil, nil, err
			}
			if rate > bestRate {
				bestRate = rate
				bestSymbol = symbol
			}
		}
		if bestSymbol == "" {
			// only reachable when every forecast is NaN
			return nil, nil, fmt.Errorf("%w: no comparable forecast for month %d", models.ErrDomain, month)
		}

		predictedPrice := prices[bestSymbol] * (1 + bestRate)
		prices[bestSymbol] = predictedPrice

		purchases = append(purchases, models.PurchaseRecord{
			Date:          monthDate(in.StartDate, month),
			Symbol:        bestSymbol,
			Price:         predictedPrice,
			GrowthPercent: models.PercentFromFraction(bestRate),
			Shares:        CalculateShares(in.MonthlyInvestment, predictedPrice),
		})
	}

	return purchases, recorder.Points(), nil
}

// CalculateShares returns how many shares investment buys at price, or 0 when the
// price is zero or not a number.
func CalculateShares(investment float64, price float64) float64 {
	if price == 0 || math.IsNaN(price) {
		return 0
	}
	return investment / price
}

func monthDate(start time.Time, month int) time.Time {
	return start.AddDate(0, 0, monthDays*month)
}

func validateSimulationInput(in SimulationInput) error {
	if len(in.Symbols) == 0 {
		return fmt.Errorf("%w: no symbol to choose from", models.ErrConfiguration)
	}
	for _, symbol := range in.Symbols {
		growth, ok := in.Growth[symbol]
		if !ok {
			return fmt.Errorf("%w: no growth sequence for %s", models.ErrConfiguration, symbol)
		}
		if growth.IsEmpty() {
			return fmt.Errorf("%w: empty growth sequence for %s", models.ErrConfiguration, symbol)
		}
		if _, ok := in.InitialPrices[symbol]; !ok {
			return fmt.Errorf("%w: no initial price for %s", models.ErrConfiguration, symbol)
		}
	}
	return nil
}
