package binance

import (
	"context"
	"fmt"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStockTrader/helpers"
	"gitlab.com/aoterocom/AOStockTrader/models"
)

// klinesLimit is the largest page the klines endpoint serves.
const klinesLimit = 1000

// BinanceService reads daily klines of a Binance pair such as BTCUSDT.
type BinanceService struct {
	binanceClient *binance.Client
}

func NewBinanceService(apiKey string, apiSecret string) *BinanceService {
	return &BinanceService{
		binanceClient: binance.NewClient(apiKey, apiSecret),
	}
}

// NewBinanceServiceWithClient wraps an already configured client.
func NewBinanceServiceWithClient(client *binance.Client) *BinanceService {
	return &BinanceService{binanceClient: client}
}

func (binanceService *BinanceService) Name() string { return "binance" }

func (binanceService *BinanceService) GetSeries(ctx context.Context, pair string, from, to time.Time) (techan.TimeSeries, error) {
	timeSeries := techan.TimeSeries{}
	var resultKlines []*binance.Kline

	startTime := from.UnixMilli()
	endTime := to.UnixMilli()
	for startTime <= endTime {
		klines, err := binanceService.binanceClient.NewKlinesService().Symbol(pair).
			Interval("1d").StartTime(startTime).EndTime(endTime).Limit(klinesLimit).Do(ctx)
		if err != nil {
			return timeSeries, fmt.Errorf("%w: klines %s: %v", models.ErrDataFetch, pair, err)
		}
		resultKlines = append(resultKlines, klines...)

		if len(klines) < klinesLimit {
			break
		}
		startTime = klines[len(klines)-1].OpenTime + 1
	}

	for _, k := range resultKlines {
		closePrice := big.NewFromString(k.Close)
		if err := helpers.AddDailyCandle(&timeSeries, time.UnixMilli(k.OpenTime).UTC(), closePrice); err != nil {
			return timeSeries, fmt.Errorf("%s: %w", pair, err)
		}
	}
	helpers.Logger.Traceln(fmt.Sprintf("binance: %s %d candles", pair, len(timeSeries.Candles)))

	return timeSeries, nil
}
