package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gitlab.com/aoterocom/AOStockTrader/helpers"
	"gitlab.com/aoterocom/AOStockTrader/models"
)

// lineColors cycles over the series of the trend plot.
var lineColors = []termui.Color{
	termui.ColorCyan,
	termui.ColorYellow,
	termui.ColorMagenta,
	termui.ColorGreen,
	termui.ColorRed,
	termui.ColorBlue,
	termui.ColorWhite,
}

// TerminalDashboard shows the growth trends and the ledger in the terminal until
// the user presses q.
type TerminalDashboard struct {
	Trends   []models.TrendPoint
	Records  []models.PurchaseRecord
	Currency string
}

func NewTerminalDashboard(trends []models.TrendPoint, records []models.PurchaseRecord, currency string) *TerminalDashboard {
	return &TerminalDashboard{
		Trends:   trends,
		Records:  records,
		Currency: currency,
	}
}

func (ui *TerminalDashboard) Run() error {
	if err := termui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %v", err)
	}
	defer termui.Close()

	grid := ui.buildGrid()
	width, height := termui.TerminalDimensions()
	grid.SetRect(0, 0, width, height)
	termui.Render(grid)

	uiEvents := termui.PollEvents()
	for e := range uiEvents {
		switch e.ID {
		case "q", "<C-c>":
			helpers.Logger.Debugln("Dashboard closed")
			return nil
		case "<Resize>":
			payload := e.Payload.(termui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			termui.Clear()
			termui.Render(grid)
		}
	}
	return nil
}

func (ui *TerminalDashboard) buildGrid() *termui.Grid {
	groups := GroupTrends(ui.Trends)

	grid := termui.NewGrid()
	grid.Set(
		termui.NewRow(0.6,
			termui.NewCol(0.8, buildTrendPlot(groups)),
			termui.NewCol(0.2, buildLegend(groups)),
		),
		termui.NewRow(0.4, buildLedgerTable(ui.Records, ui.Currency)),
	)
	return grid
}

// buildTrendPlot draws one line per symbol. The braille canvas has no negative
// range, so every value is shifted up by the lowest growth and the shift is shown
// in the title.
func buildTrendPlot(groups []TrendSeries) *widgets.Plot {
	plot := widgets.NewPlot()
	plot.TitleStyle.Fg = termui.ColorYellow
	plot.BorderStyle.Fg = termui.ColorYellow
	plot.AxesColor = termui.ColorWhite
	plot.Marker = widgets.MarkerBraille
	plot.PlotType = widgets.LineChart

	low, high := valueRange(groups)
	offset := 0.0
	if low < 0 {
		offset = -low
		plot.Title = fmt.Sprintf("%s [%s, +%.2f]", ChartTitle, ChartYTitle, offset)
	} else {
		plot.Title = fmt.Sprintf("%s [%s]", ChartTitle, ChartYTitle)
	}

	for i, group := range groups {
		line := make([]float64, 0, len(group.Values)+1)
		for _, v := range group.Values {
			line = append(line, v+offset)
		}
		if len(line) == 1 {
			line = append(line, line[0])
		}
		plot.Data = append(plot.Data, line)
		plot.LineColors = append(plot.LineColors, lineColors[i%len(lineColors)])
	}
	if len(plot.Data) == 0 {
		plot.Data = [][]float64{{0, 0}}
	}
	plot.DataLabels = chartDates(groups)
	plot.MaxVal = math.Max(high+offset, 1)

	return plot
}

func buildLegend(groups []TrendSeries) *widgets.Paragraph {
	legend := widgets.NewParagraph()
	legend.Title = "Symbols"
	var text strings.Builder
	for i, group := range groups {
		color := colorName(lineColors[i%len(lineColors)])
		fmt.Fprintf(&text, "[%s](fg:%s)\n", group.Symbol, color)
	}
	low, high := valueRange(groups)
	fmt.Fprintf(&text, "\n%s\n%s: %.2f .. %.2f", ChartXTitle, ChartYTitle, low, high)
	legend.Text = text.String()
	return legend
}

func buildLedgerTable(records []models.PurchaseRecord, currency string) *widgets.Table {
	table := widgets.NewTable()
	table.Title = LedgerTitle
	table.TextStyle = termui.NewStyle(termui.ColorWhite)
	table.RowSeparator = false
	table.Rows = [][]string{LedgerHeader()}
	for _, record := range records {
		table.Rows = append(table.Rows, LedgerRow(record, currency))
	}
	table.RowStyles[0] = termui.NewStyle(termui.ColorYellow, termui.ColorClear, termui.ModifierBold)
	return table
}

func colorName(color termui.Color) string {
	switch color {
	case termui.ColorCyan:
		return "cyan"
	case termui.ColorYellow:
		return "yellow"
	case termui.ColorMagenta:
		return "magenta"
	case termui.ColorGreen:
		return "green"
	case termui.ColorRed:
		return "red"
	case termui.ColorBlue:
		return "blue"
	default:
		return "white"
	}
}
