package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PricingMode selects how the sale price of one unit is chosen.
type PricingMode int

const (
	PricingRecommended PricingMode = iota // Recommended price (investment + 50%)
	PricingPercentage                     // Investment plus a user-defined percentage
	PricingFixedProfit                    // Investment plus a fixed profit per unit
	PricingManualPrice                    // User already knows the sale price
)

// PricingModes lists every mode in display order.
var PricingModes = []PricingMode{
	PricingRecommended,
	PricingPercentage,
	PricingFixedProfit,
	PricingManualPrice,
}

func (m PricingMode) String() string {
	switch m {
	case PricingRecommended:
		return "RECOMMENDED"
	case PricingPercentage:
		return "PERCENTAGE"
	case PricingFixedProfit:
		return "FIXED_PROFIT"
	case PricingManualPrice:
		return "MANUAL_PRICE"
	default:
		return fmt.Sprintf("PricingMode(%d)", int(m))
	}
}

// Label returns the human readable caption used by the form shells and reports.
func (m PricingMode) Label() string {
	switch m {
	case PricingRecommended:
		return "Use recommended sale price"
	case PricingPercentage:
		return "Set price by profit percentage"
	case PricingFixedProfit:
		return "Set fixed profit per unit"
	case PricingManualPrice:
		return "I already have the sale price"
	default:
		return m.String()
	}
}

// ParamLabel describes what PricingParam means for this mode, or "" when unused.
func (m PricingMode) ParamLabel() string {
	switch m {
	case PricingPercentage:
		return "Profit percentage (%)"
	case PricingFixedProfit:
		return "Profit per unit"
	case PricingManualPrice:
		return "Sale price per unit"
	default:
		return ""
	}
}

// UsesParam reports whether PricingParam takes part in the price selection.
func (m PricingMode) UsesParam() bool {
	return m.ParamLabel() != ""
}

// Valid reports whether m is one of the known modes.
func (m PricingMode) Valid() bool {
	return m >= PricingRecommended && m <= PricingManualPrice
}

// ParsePricingMode accepts the String() form (case-insensitive) or a mode Label.
func ParsePricingMode(s string) (PricingMode, error) {
	s = strings.TrimSpace(s)
	for _, m := range PricingModes {
		if strings.EqualFold(s, m.String()) || s == m.Label() {
			return m, nil
		}
	}
	return 0, &InvalidInputError{Field: "pricing_mode", Reason: fmt.Sprintf("unknown pricing mode %q", s)}
}

// MarshalText encodes the mode by name so config files stay readable.
func (m PricingMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode written by MarshalText.
func (m *PricingMode) UnmarshalText(text []byte) error {
	parsed, err := ParsePricingMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Input holds everything the user types into the calculator for one batch.
type Input struct {
	Quantity      int             `json:"quantity"`   // units produced, >= 1
	TotalDays     int             `json:"total_days"` // working days for the batch, >= 1
	MaterialCostA decimal.Decimal `json:"material_cost_a"`
	MaterialCostB decimal.Decimal `json:"material_cost_b"`
	DailyWage     decimal.Decimal `json:"daily_wage"`
	Transport     decimal.Decimal `json:"transport"`
	Installation  decimal.Decimal `json:"installation"`
	OtherCosts    decimal.Decimal `json:"other_costs"`
	PricingMode   PricingMode     `json:"pricing_mode"`
	PricingParam  decimal.Decimal `json:"pricing_param"`
}

// DefaultInput returns the values the form starts with: one unit, one day,
// no costs and the recommended price.
func DefaultInput() Input {
	return Input{
		Quantity:      1,
		TotalDays:     1,
		MaterialCostA: decimal.Zero,
		MaterialCostB: decimal.Zero,
		DailyWage:     decimal.Zero,
		Transport:     decimal.Zero,
		Installation:  decimal.Zero,
		OtherCosts:    decimal.Zero,
		PricingMode:   PricingRecommended,
		PricingParam:  decimal.Zero,
	}
}

// Validate checks the minimum-count rules and that every amount in use is
// non-negative and within MaxAmount.
// The first violation found is returned as an *InvalidInputError.
func (in Input) Validate() error {
	if in.Quantity < 1 {
		return &InvalidInputError{Field: "quantity", Reason: "must be at least 1"}
	}
	if in.TotalDays < 1 {
		return &InvalidInputError{Field: "total_days", Reason: "must be at least 1"}
	}
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"material_cost_a", in.MaterialCostA},
		{"material_cost_b", in.MaterialCostB},
		{"daily_wage", in.DailyWage},
		{"transport", in.Transport},
		{"installation", in.Installation},
		{"other_costs", in.OtherCosts},
	}
	// The parameter is ignored by modes that do not use it
	if in.PricingMode.UsesParam() {
		amounts = append(amounts, struct {
			field string
			value decimal.Decimal
		}{"pricing_param", in.PricingParam})
	}
	for _, a := range amounts {
		if err := checkAmount(a.field, a.value); err != nil {
			return err
		}
	}
	if !in.PricingMode.Valid() {
		return &InvalidInputError{Field: "pricing_mode", Reason: fmt.Sprintf("unknown pricing mode %s", in.PricingMode)}
	}
	return nil
}

// Equal reports whether two inputs hold the same values.
func (in Input) Equal(other Input) bool {
	return in.Quantity == other.Quantity &&
		in.TotalDays == other.TotalDays &&
		in.MaterialCostA.Equal(other.MaterialCostA) &&
		in.MaterialCostB.Equal(other.MaterialCostB) &&
		in.DailyWage.Equal(other.DailyWage) &&
		in.Transport.Equal(other.Transport) &&
		in.Installation.Equal(other.Installation) &&
		in.OtherCosts.Equal(other.OtherCosts) &&
		in.PricingMode == other.PricingMode &&
		in.PricingParam.Equal(other.PricingParam)
}
