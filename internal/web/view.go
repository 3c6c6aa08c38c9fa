package web

import (
	"github.com/piwi3910/FurniProfit/internal/engine"
	"github.com/piwi3910/FurniProfit/internal/format"
	"github.com/piwi3910/FurniProfit/internal/model"
)

type modeOption struct {
	Value      string
	Label      string
	ParamLabel string
	Checked    bool
}

type figureView struct {
	Label string
	Value string
	Loss  bool
}

type comparisonView struct {
	Name          string
	Price         string
	ProfitPerUnit string
	TotalProfit   string
	DailyProfit   string
	Loss          bool
}

// pageView is everything index.html needs. Amounts are preformatted so the
// template never rounds.
type pageView struct {
	BusinessName string
	Title        string
	Footer       string
	Form         formValues
	Modes        []modeOption
	Error        string

	HasResult   bool
	Loss        bool
	Costs       []figureView
	Figures     []figureView
	Comparisons []comparisonView

	money format.Money
}

func newPageView(prefs model.AppConfig, values formValues) *pageView {
	selected := values[fieldPricingMode]
	if selected == "" {
		selected = model.PricingRecommended.String()
	}
	// Accept labels or lowercase names coming back from the form
	if mode, err := model.ParsePricingMode(selected); err == nil {
		selected = mode.String()
	}

	modes := make([]modeOption, 0, len(model.PricingModes))
	for _, m := range model.PricingModes {
		modes = append(modes, modeOption{
			Value:      m.String(),
			Label:      m.Label(),
			ParamLabel: m.ParamLabel(),
			Checked:    m.String() == selected,
		})
	}

	return &pageView{
		BusinessName: prefs.BusinessName,
		Title:        prefs.ReportTitle,
		Footer:       prefs.ReportFooter,
		Form:         values,
		Modes:        modes,
		money:        format.NewMoney(prefs.Currency),
	}
}

func (p *pageView) setError(err error) {
	p.Error = inputErrorMessage(err)
	p.HasResult = false
}

// setResults fills the result tables. The first comparison is the current
// input.
func (p *pageView) setResults(comparisons []engine.Comparison) {
	if len(comparisons) == 0 {
		return
	}
	current := comparisons[0].Result

	p.HasResult = true
	p.Loss = current.IsLoss()
	p.Costs = p.figures(current.CostFigures())
	p.Figures = p.figures(current.Figures())

	p.Comparisons = make([]comparisonView, 0, len(comparisons))
	for _, c := range comparisons {
		p.Comparisons = append(p.Comparisons, comparisonView{
			Name:          c.Scenario.Name,
			Price:         p.money.Format(c.Result.UsedPrice),
			ProfitPerUnit: p.money.Format(c.Result.ProfitPerUnit),
			TotalProfit:   p.money.Format(c.Result.TotalProfit),
			DailyProfit:   p.money.Format(c.Result.DailyProfit),
			Loss:          c.Result.IsLoss(),
		})
	}
}

func (p *pageView) figures(figs []model.Figure) []figureView {
	out := make([]figureView, 0, len(figs))
	for _, f := range figs {
		out = append(out, figureView{
			Label: f.Label,
			Value: p.money.Format(f.Value),
			Loss:  f.Value.IsNegative(),
		})
	}
	return out
}
