package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOStockTrader/models"
	"gitlab.com/aoterocom/AOStockTrader/models/analytics"
)

func samplePurchases() []models.PurchaseRecord {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.PurchaseRecord{
		{Date: start, Symbol: "A", Price: 102, GrowthPercent: 2, Shares: 1000.0 / 102},
		{Date: start.AddDate(0, 0, 30), Symbol: "B", Price: 50.5, GrowthPercent: 1, Shares: 1000.0 / 50.5},
		{Date: start.AddDate(0, 0, 60), Symbol: "A", Price: 104.04, GrowthPercent: 2, Shares: 1000.0 / 104.04},
	}
}

func ledgerLines(t *testing.T, records []models.PurchaseRecord) []string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, RenderLedger(&out, records, "USD"))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func TestRenderLedger(t *testing.T) {
	lines := ledgerLines(t, samplePurchases())
	require.Len(t, lines, 5)
	assert.Equal(t, "Date           Stock     Growth %  Price      Shares", lines[0])
	assert.Equal(t, strings.Repeat("-", 60), lines[1])
	assert.Equal(t, "2024-01-01     A         2.00      $102.00    9.8039", lines[2])
	assert.Equal(t, "2024-01-31     B         1.00      $50.50     19.8020", lines[3])
	assert.Equal(t, "2024-03-01     A         2.00      $104.04    9.6117", lines[4])
}

func TestRenderLedgerLargePrices(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	lines := ledgerLines(t, []models.PurchaseRecord{
		{Date: day, Symbol: "BTCUSDT", Price: 60123.45, GrowthPercent: 2, Shares: 0.0166},
		{Date: day, Symbol: "BTCUSDT", Price: 1234567.89, GrowthPercent: 2, Shares: 0.0001},
	})
	require.Len(t, lines, 4)
	assert.Equal(t, "2024-01-01     BTCUSDT   2.00      $60123.45  0.0166", lines[2])
	// a price wider than its column still keeps the shares apart
	assert.Equal(t, "2024-01-01     BTCUSDT   2.00      $1234567.89 0.0001", lines[3])
}

func TestRenderLedgerEmpty(t *testing.T) {
	lines := ledgerLines(t, nil)
	assert.Len(t, lines, 2)
}

func TestRenderLedgerNegativeGrowth(t *testing.T) {
	record := models.PurchaseRecord{
		Date:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Symbol:        "TSLA",
		Price:         180.5,
		GrowthPercent: -3.456,
		Shares:        -2.5,
	}
	assert.Equal(t, []string{"2024-05-01", "TSLA", "-3.46", "$180.50", "-2.5000"}, LedgerRow(record, "USD"))
}

func TestRenderSummary(t *testing.T) {
	purchases := samplePurchases()
	result := analytics.NewSimulationResult(analytics.SimulationRequest{MonthlyInvestment: 1000, Risk: 0.7, Months: 3},
		models.RiskTierLow, []string{"A", "B"}, purchases, nil)

	var out bytes.Buffer
	require.NoError(t, RenderSummary(&out, result, "USD"))
	assert.Contains(t, out.String(), "Tier: low (A, B)")
	assert.Contains(t, out.String(), "invested: $3,000.00")
	assert.Contains(t, out.String(), "2 buys")

	line := SummaryLine(result, "USD")
	assert.Equal(t, "Simulated 3 months on the low tier, invested $3,000.00: A 19.4156, B 19.8020", line)

	empty := analytics.NewSimulationResult(analytics.SimulationRequest{}, models.RiskTierHigh, nil, nil, nil)
	assert.Contains(t, SummaryLine(empty, "USD"), "nothing bought")
}

// failingWriter accepts okWrites writes and fails every later one.
type failingWriter struct {
	okWrites int
}

var errWriteFailed = errors.New("write failed")

func (fw *failingWriter) Write(p []byte) (int, error) {
	if fw.okWrites == 0 {
		return 0, errWriteFailed
	}
	fw.okWrites--
	return len(p), nil
}

func TestRenderSummaryReportsWriteErrors(t *testing.T) {
	result := analytics.NewSimulationResult(analytics.SimulationRequest{MonthlyInvestment: 1000},
		models.RiskTierLow, []string{"A", "B"}, samplePurchases(), nil)

	for okWrites := 0; okWrites < 3; okWrites++ {
		err := RenderSummary(&failingWriter{okWrites: okWrites}, result, "USD")
		assert.True(t, errors.Is(err, errWriteFailed), "failing after %d writes", okWrites)
	}
	assert.NoError(t, RenderSummary(&failingWriter{okWrites: 10}, result, "USD"))
}

func TestRenderLedgerReportsWriteErrors(t *testing.T) {
	for okWrites := 0; okWrites < 3; okWrites++ {
		err := RenderLedger(&failingWriter{okWrites: okWrites}, samplePurchases(), "USD")
		assert.True(t, errors.Is(err, errWriteFailed), "failing after %d writes", okWrites)
	}
}
