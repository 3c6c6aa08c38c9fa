package model

import "github.com/shopspring/decimal"

// Result holds every figure derived from an Input. It is recomputed from
// scratch on each change and never stored.
type Result struct {
	Input             Input           `json:"input"`
	WearCost          decimal.Decimal `json:"wear_cost"`
	LaborCost         decimal.Decimal `json:"labor_cost"`
	TotalInvestment   decimal.Decimal `json:"total_investment"`
	InvestmentPerUnit decimal.Decimal `json:"investment_per_unit"`
	RecommendedPrice  decimal.Decimal `json:"recommended_price"`
	WholesalePrice    decimal.Decimal `json:"wholesale_price"`
	UsedPrice         decimal.Decimal `json:"used_price"`
	ProfitPerUnit     decimal.Decimal `json:"profit_per_unit"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	DailyProfit       decimal.Decimal `json:"daily_profit"`
}

// IsLoss reports whether the chosen price is below the investment per unit.
func (r Result) IsLoss() bool {
	return r.ProfitPerUnit.IsNegative()
}

// Figure is one labelled amount of a Result, in presentation order.
type Figure struct {
	Key   string
	Label string
	Value decimal.Decimal
}

// Figures returns the result amounts shown on screen and in exported documents.
// Every renderer walks this list so labels and order stay identical.
func (r Result) Figures() []Figure {
	return []Figure{
		{"total_investment", "Total investment", r.TotalInvestment},
		{"investment_per_unit", "Investment per unit", r.InvestmentPerUnit},
		{"recommended_price", "Recommended sale price", r.RecommendedPrice},
		{"wholesale_price", "Minimum wholesale price", r.WholesalePrice},
		{"used_price", "Price used", r.UsedPrice},
		{"profit_per_unit", "Profit per unit", r.ProfitPerUnit},
		{"total_profit", "Total profit", r.TotalProfit},
		{"daily_profit", "Daily profit", r.DailyProfit},
	}
}

// CostFigures returns the cost breakdown that makes up the total investment.
func (r Result) CostFigures() []Figure {
	in := r.Input
	return []Figure{
		{"material_cost_a", "Board / melamine", in.MaterialCostA},
		{"material_cost_b", "Hardware / accessories", in.MaterialCostB},
		{"wear_cost", "Wear (5% of materials)", r.WearCost},
		{"labor_cost", "Labor", r.LaborCost},
		{"transport", "Transport", in.Transport},
		{"installation", "Installation", in.Installation},
		{"other_costs", "Other costs", in.OtherCosts},
	}
}
