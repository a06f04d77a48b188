package analytics

import (
	"time"

	"gitlab.com/aoterocom/AOStockTrader/helpers"
	"gitlab.com/aoterocom/AOStockTrader/models"
)

// SimulationRequest holds the user inputs of one simulation run.
type SimulationRequest struct {
	MonthlyInvestment float64
	Risk              float64
	Months            int
	StartDate         time.Time
}

// Holding sums up what the simulation bought of one symbol.
type Holding struct {
	Symbol    string
	Shares    float64
	Purchases int
	Invested  float64
}

// SimulationResult is the outcome of one simulation run.
type SimulationResult struct {
	Request   SimulationRequest
	Tier      models.RiskTier
	Symbols   []string
	Purchases []models.PurchaseRecord
	Trends    []models.TrendPoint
	Holdings  []Holding
}

// NewSimulationResult builds the result and its per symbol holdings, listed in
// first purchase order.
func NewSimulationResult(request SimulationRequest, tier models.RiskTier, symbols []string,
	purchases []models.PurchaseRecord, trends []models.TrendPoint) SimulationResult {

	result := SimulationResult{
		Request:   request,
		Tier:      tier,
		Symbols:   append([]string(nil), symbols...),
		Purchases: purchases,
		Trends:    trends,
	}

	index := make(map[string]int)
	for _, purchase := range purchases {
		i, ok := index[purchase.Symbol]
		if !ok {
			i = len(result.Holdings)
			index[purchase.Symbol] = i
			result.Holdings = append(result.Holdings, Holding{Symbol: purchase.Symbol})
		}
		result.Holdings[i].Shares += purchase.Shares
		result.Holdings[i].Purchases++
		result.Holdings[i].Invested += request.MonthlyInvestment
	}
	return result
}

// TotalInvested is the sum of all monthly contributions.
func (sr SimulationResult) TotalInvested() float64 {
	invested := make([]float64, 0, len(sr.Holdings))
	for _, holding := range sr.Holdings {
		invested = append(invested, holding.Invested)
	}
	return helpers.Sum(invested)
}
