package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStockTrader/helpers"
	"gitlab.com/aoterocom/AOStockTrader/models"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com"

// YahooService reads daily closes from the public Yahoo Finance chart API.
type YahooService struct {
	BaseURL string
	Client  *http.Client
}

func NewYahooService() *YahooService {
	return &YahooService{
		BaseURL: DefaultBaseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (ys *YahooService) Name() string { return "yahoo" }

// chartResponse is the subset of the chart API payload we read. Closes are
// pointers because Yahoo sends null for sessions without a print.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency             string `json:"currency"`
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (ys *YahooService) GetSeries(ctx context.Context, symbol string, from, to time.Time) (techan.TimeSeries, error) {
	timeSeries := techan.TimeSeries{}

	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		ys.BaseURL, url.PathEscape(symbol), from.Unix(), to.Unix())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return timeSeries, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := ys.client().Do(req)
	if err != nil {
		return timeSeries, fmt.Errorf("%w: %v", models.ErrDataFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return timeSeries, fmt.Errorf("%w: reading body: %v", models.ErrDataFetch, err)
	}
	if resp.StatusCode != http.StatusOK {
		return timeSeries, fmt.Errorf("%w: GET %s: %s", models.ErrDataFetch, resp.Request.URL.Path, resp.Status)
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return timeSeries, fmt.Errorf("%w: decoding chart: %v", models.ErrDataFetch, err)
	}
	if chart.Chart.Error != nil {
		return timeSeries, fmt.Errorf("%w: %s: %s", models.ErrDataFetch, chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return timeSeries, fmt.Errorf("%w: no data returned for %s", models.ErrDataFetch, symbol)
	}

	result := chart.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	location := exchangeLocation(result.Meta.ExchangeTimezoneName)

	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		if err := helpers.AddDailyCandle(&timeSeries, time.Unix(ts, 0).In(location), big.NewDecimal(*closes[i])); err != nil {
			return timeSeries, fmt.Errorf("%s: %w", symbol, err)
		}
	}
	helpers.Logger.Traceln(fmt.Sprintf("yahoo: %s %d candles", symbol, len(timeSeries.Candles)))

	return timeSeries, nil
}

func (ys *YahooService) client() *http.Client {
	if ys.Client == nil {
		return http.DefaultClient
	}
	return ys.Client
}

// exchangeLocation resolves the exchange time zone so that sessions are dated as
// the exchange dates them. Unknown zones fall back to UTC.
func exchangeLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return location
}
