package web

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/piwi3910/FurniProfit/internal/model"
)

// Form field names, shared by the template and the parser.
const (
	fieldQuantity      = "quantity"
	fieldTotalDays     = "total_days"
	fieldMaterialCostA = "material_cost_a"
	fieldMaterialCostB = "material_cost_b"
	fieldDailyWage     = "daily_wage"
	fieldTransport     = "transport"
	fieldInstallation  = "installation"
	fieldOtherCosts    = "other_costs"
	fieldPricingMode   = "pricing_mode"
	fieldPricingParam  = "pricing_param"
)

// formValues keeps the raw text the user typed so the page can be re-rendered
// exactly as submitted, including invalid values.
type formValues map[string]string

// valuesFromInput fills the form from an Input, used for the initial page.
func valuesFromInput(in model.Input) formValues {
	str := func(d decimal.Decimal) string { return d.String() }
	return formValues{
		fieldQuantity:      decimal.NewFromInt(int64(in.Quantity)).String(),
		fieldTotalDays:     decimal.NewFromInt(int64(in.TotalDays)).String(),
		fieldMaterialCostA: str(in.MaterialCostA),
		fieldMaterialCostB: str(in.MaterialCostB),
		fieldDailyWage:     str(in.DailyWage),
		fieldTransport:     str(in.Transport),
		fieldInstallation:  str(in.Installation),
		fieldOtherCosts:    str(in.OtherCosts),
		fieldPricingMode:   in.PricingMode.String(),
		fieldPricingParam:  str(in.PricingParam),
	}
}

// parseInputForm reads and validates the calculator form. The raw values are
// returned even when parsing fails.
func parseInputForm(r *http.Request) (model.Input, formValues, error) {
	if err := r.ParseForm(); err != nil {
		return model.Input{}, formValues{}, &model.InvalidInputError{Field: "form", Reason: "could not be read"}
	}

	values := formValues{}
	for _, name := range []string{
		fieldQuantity, fieldTotalDays, fieldMaterialCostA, fieldMaterialCostB, fieldDailyWage,
		fieldTransport, fieldInstallation, fieldOtherCosts, fieldPricingMode, fieldPricingParam,
	} {
		values[name] = r.FormValue(name)
	}

	var in model.Input
	var err error

	if in.Quantity, err = model.ParseCount(fieldQuantity, values[fieldQuantity]); err != nil {
		return model.Input{}, values, err
	}
	if in.TotalDays, err = model.ParseCount(fieldTotalDays, values[fieldTotalDays]); err != nil {
		return model.Input{}, values, err
	}

	amounts := []struct {
		name string
		dst  *decimal.Decimal
	}{
		{fieldMaterialCostA, &in.MaterialCostA},
		{fieldMaterialCostB, &in.MaterialCostB},
		{fieldDailyWage, &in.DailyWage},
		{fieldTransport, &in.Transport},
		{fieldInstallation, &in.Installation},
		{fieldOtherCosts, &in.OtherCosts},
	}
	for _, a := range amounts {
		if *a.dst, err = model.ParseAmount(a.name, values[a.name]); err != nil {
			return model.Input{}, values, err
		}
	}

	if values[fieldPricingMode] == "" {
		in.PricingMode = model.PricingRecommended
	} else if in.PricingMode, err = model.ParsePricingMode(values[fieldPricingMode]); err != nil {
		return model.Input{}, values, err
	}

	// A hidden parameter field is ignored rather than validated
	if in.PricingMode.UsesParam() {
		if in.PricingParam, err = model.ParseAmount(fieldPricingParam, values[fieldPricingParam]); err != nil {
			return model.Input{}, values, err
		}
	}

	return in, values, nil
}
