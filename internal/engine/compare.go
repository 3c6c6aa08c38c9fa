package engine

import (
	"github.com/shopspring/decimal"

	"github.com/piwi3910/FurniProfit/internal/model"
)

// Scenario names a pricing override to compare against the current input.
type Scenario struct {
	Name  string
	Mode  model.PricingMode
	Param decimal.Decimal
}

// Comparison holds the derived result for a single scenario.
type Comparison struct {
	Scenario Scenario
	Result   model.Result
}

// BuildDefaultScenarios returns the what-if alternatives shown next to the
// current result: the current settings, the recommended price and the
// minimum wholesale price.
func BuildDefaultScenarios(in model.Input) []Scenario {
	return []Scenario{
		{Name: "Current", Mode: in.PricingMode, Param: in.PricingParam},
		{Name: "Recommended price", Mode: model.PricingRecommended, Param: decimal.Zero},
		{Name: "Wholesale price", Mode: model.PricingPercentage, Param: decimal.NewFromInt(45)},
	}
}

// CompareScenarios derives one result per scenario, keeping scenario order.
// Only the pricing mode and parameter differ between runs; everything else
// comes from in. The validation error of in is returned as is.
func CompareScenarios(in model.Input, scenarios []Scenario) ([]Comparison, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	results := make([]Comparison, 0, len(scenarios))
	for _, sc := range scenarios {
		variant := in
		variant.PricingMode = sc.Mode
		variant.PricingParam = sc.Param

		res, err := Calculate(variant)
		if err != nil {
			return nil, err
		}
		results = append(results, Comparison{Scenario: sc, Result: res})
	}
	return results, nil
}
