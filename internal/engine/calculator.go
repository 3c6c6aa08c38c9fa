// Package engine derives prices and profit for a furniture batch.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/piwi3910/FurniProfit/internal/model"
)

// Pricing constants.
var (
	WearRate         = decimal.RequireFromString("0.05") // wear surcharge on combined material costs
	RecommendedRatio = decimal.RequireFromString("1.50") // recommended price = investment + 50%
	WholesaleRatio   = decimal.RequireFromString("1.45") // minimum wholesale price = investment + 45%

	hundred = decimal.NewFromInt(100)
)

// Calculate derives the full Result for in. It returns a *model.InvalidInputError
// and no result when in fails validation. A negative profit is valid output.
func Calculate(in model.Input) (model.Result, error) {
	if err := in.Validate(); err != nil {
		return model.Result{}, err
	}

	quantity := decimal.NewFromInt(int64(in.Quantity))
	days := decimal.NewFromInt(int64(in.TotalDays))

	materials := in.MaterialCostA.Add(in.MaterialCostB)
	wear := materials.Mul(WearRate)
	labor := in.DailyWage.Mul(days)

	total := in.MaterialCostA.
		Add(in.MaterialCostB).
		Add(wear).
		Add(in.Transport).
		Add(in.Installation).
		Add(in.OtherCosts).
		Add(labor)

	perUnit := total.Div(quantity)
	recommended := perUnit.Mul(RecommendedRatio)
	wholesale := perUnit.Mul(WholesaleRatio)

	used, err := usedPrice(in, perUnit, recommended)
	if err != nil {
		return model.Result{}, err
	}

	profitPerUnit := used.Sub(perUnit)
	totalProfit := profitPerUnit.Mul(quantity)

	return model.Result{
		Input:             in,
		WearCost:          wear,
		LaborCost:         labor,
		TotalInvestment:   total,
		InvestmentPerUnit: perUnit,
		RecommendedPrice:  recommended,
		WholesalePrice:    wholesale,
		UsedPrice:         used,
		ProfitPerUnit:     profitPerUnit,
		TotalProfit:       totalProfit,
		DailyProfit:       totalProfit.Div(days),
	}, nil
}

// usedPrice picks the sale price for one unit according to the pricing mode.
func usedPrice(in model.Input, perUnit, recommended decimal.Decimal) (decimal.Decimal, error) {
	switch in.PricingMode {
	case model.PricingRecommended:
		return recommended, nil
	case model.PricingPercentage:
		return perUnit.Mul(decimal.NewFromInt(1).Add(in.PricingParam.Div(hundred))), nil
	case model.PricingFixedProfit:
		return perUnit.Add(in.PricingParam), nil
	case model.PricingManualPrice:
		return in.PricingParam, nil
	default:
		// Validate already rejects unknown modes.
		return decimal.Zero, fmt.Errorf("unhandled pricing mode %s", in.PricingMode)
	}
}
