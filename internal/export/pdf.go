// Package export renders profitability results as downloadable documents.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/FurniProfit/internal/format"
	"github.com/piwi3910/FurniProfit/internal/model"
)

// Download metadata for the PDF report.
const (
	ReportFilename = "profitability_report.pdf"
	ReportMIMEType = "application/pdf"
)

// ErrExport wraps every failure raised while assembling a document.
var ErrExport = errors.New("export failed")

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 20.0
	marginRight  = 20.0
	marginTop    = 20.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	labelColumn  = 75.0
	valueColumn  = 45.0
	rowHeight    = 7.0
	qrSide       = 38.0
)

// reportEpoch is written as creation and modification date so identical
// results always produce identical bytes.
var reportEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ReportOptions holds the branding printed around the figures.
type ReportOptions struct {
	Title        string
	BusinessName string
	Currency     string
	Footer       string
}

// DefaultReportOptions returns the branding of a fresh installation.
func DefaultReportOptions() ReportOptions {
	return OptionsFromConfig(model.DefaultAppConfig())
}

// OptionsFromConfig takes the report branding from the user's preferences.
func OptionsFromConfig(cfg model.AppConfig) ReportOptions {
	return ReportOptions{
		Title:        cfg.ReportTitle,
		BusinessName: cfg.BusinessName,
		Currency:     cfg.Currency,
		Footer:       cfg.ReportFooter,
	}
}

// RenderReport lays out a one-page PDF summary of result and returns its bytes.
// Any library failure is returned wrapped in ErrExport.
func RenderReport(result model.Result, opts ReportOptions) ([]byte, error) {
	return renderReport(result, opts, true)
}

// renderReport builds the report; compress=false leaves the page content
// streams readable.
func renderReport(result model.Result, opts ReportOptions, compress bool) ([]byte, error) {
	money := format.NewMoney(opts.Currency)

	qrPNG, err := summaryQR(result)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(reportEpoch)
	pdf.SetModificationDate(reportEpoch)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("FurniProfit", true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	y := renderHeader(pdf, tr, opts)

	in := result.Input
	production := []struct {
		label string
		value string
	}{
		{"Units produced", fmt.Sprintf("%d", in.Quantity)},
		{"Total working days", fmt.Sprintf("%d", in.TotalDays)},
		{"Pricing mode", in.PricingMode.Label()},
		{"Pricing parameter", money.PricingParam(in.PricingMode, in.PricingParam)},
	}
	y = renderSectionTitle(pdf, tr, "Production", y)
	for _, item := range production {
		y = renderRow(pdf, tr, item.label, item.value, false, y)
	}

	y = renderSectionTitle(pdf, tr, "Costs", y+4)
	for _, f := range result.CostFigures() {
		y = renderRow(pdf, tr, f.Label, money.Format(f.Value), false, y)
	}

	resultsTop := y + 4
	y = renderSectionTitle(pdf, tr, "Results", resultsTop)
	for _, f := range result.Figures() {
		y = renderRow(pdf, tr, f.Label, money.Format(f.Value), f.Value.IsNegative(), y)
	}

	// QR code with the rounded figures, to the right of the results table
	pdf.RegisterImageOptionsReader("summary_qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("summary_qr", pageWidth-marginRight-qrSide, resultsTop+9, qrSide, qrSide, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	renderFooter(pdf, tr, opts.Footer)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	return buf.Bytes(), nil
}

// renderHeader draws the title block and returns the y position below it.
func renderHeader(pdf *fpdf.Fpdf, tr func(string) string, opts ReportOptions) float64 {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, 10, tr(opts.Title), "", 0, "L", false, 0, "")

	y := marginTop + 10
	if opts.BusinessName != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(90, 90, 90)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(contentWidth, 6, tr(opts.BusinessName), "", 0, "L", false, 0, "")
		y += 6
	}

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, y+2, pageWidth-marginRight, y+2)

	pdf.SetTextColor(0, 0, 0)
	return y + 8
}

func renderSectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, rowHeight, tr(title), "", 0, "L", false, 0, "")
	return y + rowHeight + 2
}

// renderRow prints one "label: value" line; losses are printed in red.
func renderRow(pdf *fpdf.Fpdf, tr func(string) string, label, value string, loss bool, y float64) float64 {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft+5, y)
	pdf.CellFormat(labelColumn, rowHeight-1, tr(label)+":", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	if loss {
		pdf.SetTextColor(200, 0, 0)
	}
	pdf.CellFormat(valueColumn, rowHeight-1, tr(value), "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return y + rowHeight
}

func renderFooter(pdf *fpdf.Fpdf, tr func(string) string, footer string) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, tr(footer), "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
