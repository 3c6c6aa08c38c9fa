// Package format renders amounts for people. The screen, the PDF report and
// the spreadsheet all go through it so they round the same way.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/piwi3910/FurniProfit/internal/model"
)

// Places is the number of decimals shown for every amount.
const Places = 2

// Money formats decimal amounts with a currency symbol and digit grouping.
type Money struct {
	Symbol  string
	printer *message.Printer
}

// NewMoney returns a formatter that prefixes amounts with symbol.
func NewMoney(symbol string) Money {
	return Money{
		Symbol:  strings.TrimSpace(symbol),
		printer: message.NewPrinter(language.English),
	}
}

// Round applies the presentation rounding (two places, half away from zero).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Amount renders d rounded to two places with thousands separators, e.g. "1,234.50".
// The digits come from the decimal itself, never from a float.
func (m Money) Amount(d decimal.Decimal) string {
	fixed := Round(d).StringFixed(Places)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + m.group(whole) + "." + frac
}

// group inserts thousands separators into a string of digits.
func (m Money) group(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return m.printer.Sprintf("%d", n)
	}
	// Wider than int64
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Format renders d with the currency symbol, e.g. "S/ 1,234.50".
func (m Money) Format(d decimal.Decimal) string {
	if m.Symbol == "" {
		return m.Amount(d)
	}
	return m.Symbol + " " + m.Amount(d)
}

// Percent renders d as a percentage with two places, e.g. "45.00%".
func (m Money) Percent(d decimal.Decimal) string {
	return m.Amount(d) + "%"
}

// PricingParam renders the pricing parameter in the unit its mode uses.
// Modes without a parameter render as "-".
func (m Money) PricingParam(mode model.PricingMode, d decimal.Decimal) string {
	switch mode {
	case model.PricingPercentage:
		return m.Percent(d)
	case model.PricingFixedProfit, model.PricingManualPrice:
		return m.Format(d)
	default:
		return "-"
	}
}
