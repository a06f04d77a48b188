package paper

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStockTrader/helpers"
	"gitlab.com/aoterocom/AOStockTrader/models"
)

// ClosePoint is one line of a paper price file:
//
//	[{"date": "2024-01-02", "close": 185.64}, ...]
type ClosePoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// PaperService serves price series kept in memory or read from <SYMBOL>.json
// files in a directory. Nothing goes to the network, which makes runs reproducible.
type PaperService struct {
	series  map[string]techan.TimeSeries
	dataDir string
}

// NewPaperService serves the given series, keyed by symbol.
func NewPaperService(series map[string]techan.TimeSeries) *PaperService {
	paperService := &PaperService{series: make(map[string]techan.TimeSeries, len(series))}
	for symbol, timeSeries := range series {
		paperService.series[strings.ToUpper(symbol)] = timeSeries
	}
	return paperService
}

// NewPaperDirService serves the series stored in dataDir. Files are read lazily.
func NewPaperDirService(dataDir string) *PaperService {
	return &PaperService{
		series:  make(map[string]techan.TimeSeries),
		dataDir: dataDir,
	}
}

func (paperService *PaperService) Name() string { return "paper" }

// GetSeries returns the candles of symbol dated between from and to, both included.
func (paperService *PaperService) GetSeries(_ context.Context, symbol string, from, to time.Time) (techan.TimeSeries, error) {
	timeSeries, err := paperService.load(strings.ToUpper(symbol))
	if err != nil {
		return techan.TimeSeries{}, err
	}

	first := helpers.TradingDay(from)
	last := helpers.TradingDay(to)
	window := techan.TimeSeries{}
	for _, candle := range timeSeries.Candles {
		day := candle.Period.Start
		if day.Before(first) || day.After(last) {
			continue
		}
		window.Candles = append(window.Candles, candle)
	}
	return window, nil
}

func (paperService *PaperService) load(symbol string) (techan.TimeSeries, error) {
	if timeSeries, ok := paperService.series[symbol]; ok {
		return timeSeries, nil
	}
	if paperService.dataDir == "" {
		return techan.TimeSeries{}, fmt.Errorf("%w: no paper series for %s", models.ErrDataFetch, symbol)
	}

	file := filepath.Join(paperService.dataDir, symbol+".json")
	content, err := os.ReadFile(file)
	if err != nil {
		return techan.TimeSeries{}, fmt.Errorf("%w: %v", models.ErrDataFetch, err)
	}
	var points []ClosePoint
	if err := json.Unmarshal(content, &points); err != nil {
		return techan.TimeSeries{}, fmt.Errorf("%w: decoding %s: %v", models.ErrDataFetch, file, err)
	}
	timeSeries, err := SeriesFromPoints(points)
	if err != nil {
		return techan.TimeSeries{}, fmt.Errorf("%s: %w", file, err)
	}
	paperService.series[symbol] = timeSeries
	return timeSeries, nil
}

// SeriesFromPoints builds a daily series from close points sorted by date.
func SeriesFromPoints(points []ClosePoint) (techan.TimeSeries, error) {
	timeSeries := techan.TimeSeries{}
	for _, point := range points {
		day, err := time.Parse(models.DateLayout, point.Date)
		if err != nil {
			return timeSeries, fmt.Errorf("%w: bad date %q", models.ErrDataFetch, point.Date)
		}
		if err := helpers.AddDailyCandle(&timeSeries, day, big.NewDecimal(point.Close)); err != nil {
			return timeSeries, err
		}
	}
	return timeSeries, nil
}
