package export

import (
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/FurniProfit/internal/format"
	"github.com/piwi3910/FurniProfit/internal/model"
)

// qrPixels is the rendered QR bitmap size before it is scaled onto the page.
const qrPixels = 256

// Summary is the data encoded into the report's QR code. Amounts are the
// rounded strings shown on the page so a scan matches what was printed.
type Summary struct {
	Quantity          int    `json:"qty"`
	TotalDays         int    `json:"days"`
	PricingMode       string `json:"mode"`
	TotalInvestment   string `json:"total_investment"`
	InvestmentPerUnit string `json:"investment_per_unit"`
	UsedPrice         string `json:"used_price"`
	ProfitPerUnit     string `json:"profit_per_unit"`
	TotalProfit       string `json:"total_profit"`
	DailyProfit       string `json:"daily_profit"`
}

// NewSummary extracts the QR payload from a result.
func NewSummary(result model.Result) Summary {
	fixed := func(f model.Figure) string {
		return format.Round(f.Value).StringFixed(format.Places)
	}
	values := map[string]string{}
	for _, f := range result.Figures() {
		values[f.Key] = fixed(f)
	}
	return Summary{
		Quantity:          result.Input.Quantity,
		TotalDays:         result.Input.TotalDays,
		PricingMode:       result.Input.PricingMode.String(),
		TotalInvestment:   values["total_investment"],
		InvestmentPerUnit: values["investment_per_unit"],
		UsedPrice:         values["used_price"],
		ProfitPerUnit:     values["profit_per_unit"],
		TotalProfit:       values["total_profit"],
		DailyProfit:       values["daily_profit"],
	}
}

// summaryQR encodes the result summary as a PNG QR code.
func summaryQR(result model.Result) ([]byte, error) {
	data, err := json.Marshal(NewSummary(result))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report summary: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
