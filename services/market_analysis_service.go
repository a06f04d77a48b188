package services

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/aoterocom/AOStockTrader/helpers"
	"gitlab.com/aoterocom/AOStockTrader/interfaces"
	"gitlab.com/aoterocom/AOStockTrader/models"
	"gitlab.com/aoterocom/AOStockTrader/models/analytics"
)

// MarketAnalysisService fetches the history of a tier's symbols and runs the
// allocation simulation over it.
type MarketAnalysisService struct {
	provider interfaces.PriceProvider
	tiers    models.TierTable
	lookback time.Duration
}

// SymbolAnalysis is what one symbol's history tells the simulation.
type SymbolAnalysis struct {
	Symbol    string
	Growth    models.GrowthSequence
	LastPrice float64
}

func NewMarketAnalysisService(provider interfaces.PriceProvider, tiers models.TierTable,
	lookback time.Duration) MarketAnalysisService {
	return MarketAnalysisService{
		provider: provider,
		tiers:    tiers,
		lookback: lookback,
	}
}

// Run simulates request against the symbols of the tier its risk level selects.
// The history used is the lookback window ending at the start date.
func (mas *MarketAnalysisService) Run(ctx context.Context, request analytics.SimulationRequest) (analytics.SimulationResult, error) {
	tier := models.TierForRisk(request.Risk)
	symbols := mas.tiers.Symbols(tier)
	helpers.Logger.Debugln(fmt.Sprintf("Risk %.2f selects the %s tier: %v", request.Risk, tier, symbols))

	input := SimulationInput{
		Symbols:           symbols,
		Growth:            make(map[string]models.GrowthSequence, len(symbols)),
		InitialPrices:     make(map[string]float64, len(symbols)),
		MonthlyInvestment: request.MonthlyInvestment,
		Months:            request.Months,
		StartDate:         request.StartDate,
	}

	for _, symbol := range symbols {
		analysis, err := mas.AnalyzeSymbol(ctx, symbol, request.StartDate)
		if err != nil {
			return analytics.SimulationResult{}, err
		}
		input.Growth[symbol] = analysis.Growth
		input.InitialPrices[symbol] = analysis.LastPrice
	}

	purchases, trends, err := Simulate(input)
	if err != nil {
		return analytics.SimulationResult{}, err
	}
	return analytics.NewSimulationResult(request, tier, symbols, purchases, trends), nil
}

// AnalyzeSymbol fetches the lookback window of symbol ending at asOf and derives
// its growth cycle and last known close.
func (mas *MarketAnalysisService) AnalyzeSymbol(ctx context.Context, symbol string, asOf time.Time) (SymbolAnalysis, error) {
	from := asOf.Add(-mas.lookback)
	timeSeries, err := mas.provider.GetSeries(ctx, symbol, from, asOf)
	if err != nil {
		return SymbolAnalysis{}, fmt.Errorf("%s: fetching %s: %w", mas.provider.Name(), symbol, err)
	}
	if len(timeSeries.Candles) == 0 {
		return SymbolAnalysis{}, fmt.Errorf("%s: %w: no prices for %s between %s and %s", mas.provider.Name(),
			models.ErrDataFetch, symbol, from.Format(models.DateLayout), asOf.Format(models.DateLayout))
	}

	growth, err := EstimateMonthlyGrowth(timeSeries)
	if err != nil {
		return SymbolAnalysis{}, fmt.Errorf("%s: %w", symbol, err)
	}
	lastPrice := timeSeries.LastCandle().ClosePrice.Float()
	helpers.Logger.Debugln(fmt.Sprintf("%s: %d sessions, %d monthly rates, last close %.4f",
		symbol, len(timeSeries.Candles), growth.Len(), lastPrice))

	return SymbolAnalysis{
		Symbol:    symbol,
		Growth:    growth,
		LastPrice: lastPrice,
	}, nil
}
