package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/FurniProfit/internal/format"
	"github.com/piwi3910/FurniProfit/internal/model"
)

// Download metadata for the spreadsheet export.
const (
	WorkbookFilename = "profitability_report.xlsx"
	WorkbookMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	WorkbookSheet    = "Profitability"
)

// amountFormat shows two decimals with thousands separators, like the screen.
var amountFormat = "#,##0.00"

// RenderWorkbook writes the same labelled figures as the PDF report into a
// single-sheet XLSX workbook. Amounts are stored already rounded to two places.
func RenderWorkbook(result model.Result, opts ReportOptions) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", WorkbookSheet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &amountFormat})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	money := format.NewMoney(opts.Currency)
	in := result.Input
	w := &sheetWriter{f: f, row: 1}

	w.text(opts.Title, "", titleStyle)
	if opts.BusinessName != "" {
		w.text(opts.BusinessName, "", 0)
	}
	if opts.Currency != "" {
		w.text("Currency", opts.Currency, 0)
	}
	w.row++

	w.text("Production", "", boldStyle)
	w.number("Units produced", float64(in.Quantity), 0)
	w.number("Total working days", float64(in.TotalDays), 0)
	w.text("Pricing mode", in.PricingMode.Label(), 0)
	w.text("Pricing parameter", money.PricingParam(in.PricingMode, in.PricingParam), 0)
	w.row++

	w.text("Costs", "", boldStyle)
	for _, fig := range result.CostFigures() {
		w.number(fig.Label, format.Round(fig.Value).InexactFloat64(), amountStyle)
	}
	w.row++

	w.text("Results", "", boldStyle)
	for _, fig := range result.Figures() {
		w.number(fig.Label, format.Round(fig.Value).InexactFloat64(), amountStyle)
	}
	w.row++
	w.text(opts.Footer, "", 0)

	if w.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, w.err)
	}
	if err := f.SetColWidth(WorkbookSheet, "A", "A", 32); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	if err := f.SetColWidth(WorkbookSheet, "B", "B", 34); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	return buf.Bytes(), nil
}

// sheetWriter appends label/value rows and keeps the first error it hits.
type sheetWriter struct {
	f   *excelize.File
	row int
	err error
}

func (w *sheetWriter) text(label, value string, style int) {
	w.set(label, value, style)
}

func (w *sheetWriter) number(label string, value float64, style int) {
	w.set(label, value, style)
}

func (w *sheetWriter) set(label string, value interface{}, style int) {
	if w.err != nil {
		return
	}
	labelCell := fmt.Sprintf("A%d", w.row)
	valueCell := fmt.Sprintf("B%d", w.row)
	w.row++

	if w.err = w.f.SetCellValue(WorkbookSheet, labelCell, label); w.err != nil {
		return
	}
	if value != "" {
		if w.err = w.f.SetCellValue(WorkbookSheet, valueCell, value); w.err != nil {
			return
		}
	}
	if style != 0 {
		target := valueCell
		if value == "" {
			target = labelCell
		}
		w.err = w.f.SetCellStyle(WorkbookSheet, target, target, style)
	}
}
