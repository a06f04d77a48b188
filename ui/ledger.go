package ui

import (
	"fmt"
	"io"
	"strings"

	"gitlab.com/aoterocom/AOStockTrader/models"
	"gitlab.com/aoterocom/AOStockTrader/models/analytics"
)

// LedgerTitle is the heading of the purchase ledger on every output surface.
const LedgerTitle = "Investment Summary"

// LedgerHeader returns the column titles of the ledger.
func LedgerHeader() []string {
	return []string{"Date", "Stock", "Growth %", "Price", "Shares"}
}

// LedgerRow formats one purchase into the ledger columns.
func LedgerRow(record models.PurchaseRecord, currency string) []string {
	return []string{
		record.Date.Format(models.DateLayout),
		record.Symbol,
		fmt.Sprintf("%.2f", float64(record.GrowthPercent)),
		models.FormatPrice(record.Price, currency),
		fmt.Sprintf("%.4f", record.Shares),
	}
}

// ledgerWidths are the column widths of the text ledger.
var ledgerWidths = [...]int{15, 10, 10, 11, 10}

// RenderLedger writes the purchases as a fixed width table.
func RenderLedger(w io.Writer, records []models.PurchaseRecord, currency string) error {
	if _, err := fmt.Fprintln(w, ledgerLine(LedgerHeader())); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 60)); err != nil {
		return err
	}
	for _, record := range records {
		if _, err := fmt.Fprintln(w, ledgerLine(LedgerRow(record, currency))); err != nil {
			return err
		}
	}
	return nil
}

// ledgerLine pads every cell to its column width. A cell that fills its column
// still gets one space before the next one.
func ledgerLine(cells []string) string {
	var line strings.Builder
	for i, cell := range cells {
		width := ledgerWidths[i]
		if i < len(cells)-1 && len(cell) >= width {
			width = len(cell) + 1
		}
		fmt.Fprintf(&line, "%-*s", width, cell)
	}
	return line.String()
}

// RenderSummary writes what the run bought per symbol.
func RenderSummary(w io.Writer, result analytics.SimulationResult, currency string) error {
	if _, err := fmt.Fprintf(w, "\nTier: %s (%s)\n", result.Tier, strings.Join(result.Symbols, ", ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Months: %d, invested: %s\n", len(result.Purchases),
		models.FormatMoney(result.TotalInvested(), currency)); err != nil {
		return err
	}
	for _, holding := range result.Holdings {
		if _, err := fmt.Fprintf(w, "  %-8s %3d buys %12.4f shares %s\n", holding.Symbol, holding.Purchases,
			holding.Shares, models.FormatMoney(holding.Invested, currency)); err != nil {
			return err
		}
	}
	return nil
}

// SummaryLine is a one line digest of the run, fit for a log line or a chat message.
func SummaryLine(result analytics.SimulationResult, currency string) string {
	parts := make([]string, 0, len(result.Holdings))
	for _, holding := range result.Holdings {
		parts = append(parts, fmt.Sprintf("%s %.4f", holding.Symbol, holding.Shares))
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing bought")
	}
	return fmt.Sprintf("Simulated %d months on the %s tier, invested %s: %s",
		len(result.Purchases), result.Tier, models.FormatMoney(result.TotalInvested(), currency), strings.Join(parts, ", "))
}
