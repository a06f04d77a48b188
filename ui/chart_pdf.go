package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"gitlab.com/aoterocom/AOStockTrader/models"
)

type rgb struct{ r, g, b int }

var pdfLineColors = []rgb{
	{31, 119, 180},
	{255, 127, 14},
	{44, 160, 44},
	{214, 39, 40},
	{148, 103, 189},
	{140, 86, 75},
	{227, 119, 194},
}

// PDFChart writes the growth trends as a line chart on a landscape A4 page, followed
// by the purchase ledger.
type PDFChart struct {
	Currency string
}

func NewPDFChart(currency string) *PDFChart {
	return &PDFChart{Currency: currency}
}

// WriteFile renders the report to path.
func (chart *PDFChart) WriteFile(path string, trends []models.TrendPoint, records []models.PurchaseRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.Render(file, trends, records); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (chart *PDFChart) Render(w io.Writer, trends []models.TrendPoint, records []models.PurchaseRecord) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(ChartTitle, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	groups := GroupTrends(trends)
	pdf.AddPage()
	drawTrendChart(pdf, groups)

	pdf.AddPage()
	drawLedger(pdf, tr, records, chart.Currency)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func drawTrendChart(pdf *fpdf.Fpdf, groups []TrendSeries) {
	pageWidth, pageHeight := pdf.GetPageSize()
	left, top := 25.0, 25.0
	right, bottom := pageWidth-60, pageHeight-40
	width, height := right-left, bottom-top

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(left, 10)
	pdf.CellFormat(width, 10, ChartTitle, "", 1, "C", false, 0, "")

	dates := chartDates(groups)
	low, high := valueRange(groups)
	if low > 0 {
		low = 0
	}
	if high < 0 {
		high = 0
	}
	if high == low {
		high = low + 1
	}
	pad := (high - low) * 0.05
	low, high = low-pad, high+pad

	xAt := func(i int) float64 {
		if len(dates) < 2 {
			return left + width/2
		}
		return left + width*float64(i)/float64(len(dates)-1)
	}
	yAt := func(v float64) float64 {
		return bottom - height*(v-low)/(high-low)
	}

	// Axes and grid.
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetDrawColor(220, 220, 220)
	pdf.SetLineWidth(0.2)
	for i := 0; i <= 5; i++ {
		v := low + (high-low)*float64(i)/5
		y := yAt(v)
		pdf.Line(left, y, right, y)
		label := fmt.Sprintf("%.2f", v)
		pdf.Text(left-2-pdf.GetStringWidth(label), y+1, label)
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Line(left, top, left, bottom)
	pdf.Line(left, bottom, right, bottom)

	pdf.SetDrawColor(120, 120, 120)
	pdf.SetDashPattern([]float64{1.5, 1.5}, 0)
	pdf.Line(left, yAt(0), right, yAt(0))
	pdf.SetDashPattern([]float64{}, 0)

	dateIndex := make(map[string]int, len(dates))
	for i, date := range dates {
		dateIndex[date] = i
		x := xAt(i)
		pdf.TransformBegin()
		pdf.TransformRotate(45, x, bottom+4)
		pdf.Text(x-pdf.GetStringWidth(date), bottom+4, date)
		pdf.TransformEnd()
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(left, pageHeight-15)
	pdf.CellFormat(width, 6, ChartXTitle, "", 0, "C", false, 0, "")
	pdf.TransformBegin()
	pdf.TransformRotate(90, 8, top+height/2)
	pdf.Text(8-pdf.GetStringWidth(ChartYTitle)/2, top+height/2, ChartYTitle)
	pdf.TransformEnd()

	// Series.
	pdf.SetLineWidth(0.6)
	for i, group := range groups {
		color := pdfLineColors[i%len(pdfLineColors)]
		pdf.SetDrawColor(color.r, color.g, color.b)
		pdf.SetFillColor(color.r, color.g, color.b)
		var prevX, prevY float64
		for j, v := range group.Values {
			x, y := xAt(dateIndex[group.Dates[j]]), yAt(v)
			if j > 0 {
				pdf.Line(prevX, prevY, x, y)
			}
			pdf.Circle(x, y, 0.9, "F")
			prevX, prevY = x, y
		}
	}

	// Legend.
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	legendX := right + 8
	for i, group := range groups {
		color := pdfLineColors[i%len(pdfLineColors)]
		y := top + float64(i)*7
		pdf.SetFillColor(color.r, color.g, color.b)
		pdf.Rect(legendX, y, 6, 3, "F")
		pdf.Text(legendX+8, y+3, group.Symbol)
	}
}

func drawLedger(pdf *fpdf.Fpdf, tr func(string) string, records []models.PurchaseRecord, currency string) {
	colWidths := []float64{40, 30, 30, 40, 40}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, LedgerTitle, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetDrawColor(180, 180, 180)
	for i, header := range LedgerHeader() {
		pdf.CellFormat(colWidths[i], 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	_, pageHeight := pdf.GetPageSize()
	for _, record := range records {
		if pdf.GetY() > pageHeight-20 {
			pdf.AddPage()
		}
		for i, cell := range LedgerRow(record, currency) {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(colWidths[i], 6, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}
