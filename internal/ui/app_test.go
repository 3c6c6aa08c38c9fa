package ui

import (
	"bytes"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/FurniProfit/internal/export"
	"github.com/piwi3910/FurniProfit/internal/model"
	"github.com/piwi3910/FurniProfit/internal/project"
)

func newTestApp(t *testing.T, configPath string) *App {
	t.Helper()
	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)

	w := fyneApp.NewWindow("FurniProfit")
	a := NewApp(fyneApp, w, model.DefaultAppConfig(), configPath, zerolog.Nop())
	a.SetupMenus()
	w.SetContent(a.Build())
	return a
}

// enterWardrobes fills the form with four wardrobes over six days at 40% profit.
func enterWardrobes(a *App) {
	a.entries["quantity"].SetText("4")
	a.entries["total_days"].SetText("6")
	a.entries["material_cost_a"].SetText("1850")
	a.entries["material_cost_b"].SetText("420.50")
	a.entries["daily_wage"].SetText("90")
	a.entries["transport"].SetText("80")
	a.entries["installation"].SetText("150")
	a.entries["other_costs"].SetText("35.75")
	a.modeRadio.SetSelected(model.PricingPercentage.Label())
	a.paramEntry.SetText("40")
}

func TestBuildShowsDefaults(t *testing.T) {
	a := newTestApp(t, "")

	assert.Equal(t, "1", a.entries["quantity"].Text)
	assert.Equal(t, model.PricingRecommended.Label(), a.modeRadio.Selected)
	assert.True(t, a.paramEntry.Disabled())
	require.NotNil(t, a.result)
	assert.Equal(t, "S/ 0.00", a.figureLabels["total_investment"].Text)
	assert.False(t, a.errorLabel.Visible())
	assert.False(t, a.history.CanUndo())
}

func TestRecalculateOnEdit(t *testing.T) {
	a := newTestApp(t, "")
	enterWardrobes(a)

	require.NotNil(t, a.result)
	assert.Equal(t, "S/ 3,189.78", a.figureLabels["total_investment"].Text)
	assert.Equal(t, "S/ 797.44", a.figureLabels["investment_per_unit"].Text)
	assert.Equal(t, "S/ 1,274.31", a.figureLabels["total_profit"].Text)
	assert.Equal(t, "S/ 212.39", a.figureLabels["daily_profit"].Text)
	assert.Equal(t, "S/ 113.53", a.costLabels["wear_cost"].Text)
	assert.Equal(t, "Profit percentage (%)", a.paramLabel.Text)
	assert.False(t, a.paramEntry.Disabled())
}

func TestInvalidInputShowsError(t *testing.T) {
	a := newTestApp(t, "")
	a.entries["quantity"].SetText("0")

	assert.Nil(t, a.result)
	assert.True(t, a.errorLabel.Visible())
	assert.Contains(t, a.errorLabel.Text, "quantity")
	assert.Equal(t, "-", a.figureLabels["total_investment"].Text)

	a.entries["quantity"].SetText("2")
	assert.NotNil(t, a.result)
	assert.False(t, a.errorLabel.Visible())
}

func TestNegativeAmountRejected(t *testing.T) {
	a := newTestApp(t, "")
	a.entries["transport"].SetText("-1")

	assert.Nil(t, a.result)
	assert.Contains(t, a.errorLabel.Text, "transport")
}

func TestLossIsHighlighted(t *testing.T) {
	a := newTestApp(t, "")
	a.entries["material_cost_a"].SetText("1000")
	a.modeRadio.SetSelected(model.PricingManualPrice.Label())
	a.paramEntry.SetText("500")

	assert.Equal(t, "S/ -550.00", a.figureLabels["profit_per_unit"].Text)
	assert.Equal(t, widget.DangerImportance, a.figureLabels["profit_per_unit"].Importance)
	assert.Equal(t, widget.MediumImportance, a.figureLabels["total_investment"].Importance)
}

func TestUndoRedoRestoresForm(t *testing.T) {
	a := newTestApp(t, "")
	a.entries["material_cost_a"].SetText("100")

	require.True(t, a.history.CanUndo())
	assert.False(t, a.undoItem.Disabled)
	assert.Equal(t, "S/ 105.00", a.figureLabels["total_investment"].Text)

	a.undo()
	assert.Equal(t, "0", a.entries["material_cost_a"].Text)
	assert.Equal(t, "S/ 0.00", a.figureLabels["total_investment"].Text)
	assert.True(t, a.history.CanRedo())

	a.redo()
	assert.Equal(t, "100", a.entries["material_cost_a"].Text)
	assert.Equal(t, "S/ 105.00", a.figureLabels["total_investment"].Text)
	assert.False(t, a.history.CanRedo())
}

func TestResetInputIsUndoable(t *testing.T) {
	a := newTestApp(t, "")
	a.entries["daily_wage"].SetText("80")

	a.resetInput()
	assert.Equal(t, "0", a.entries["daily_wage"].Text)

	a.undo()
	assert.Equal(t, "80", a.entries["daily_wage"].Text)
}

func TestRenderDocument(t *testing.T) {
	a := newTestApp(t, "")
	enterWardrobes(a)

	pdf, err := a.renderDocument(export.RenderReport)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	xlsx, err := a.renderDocument(export.RenderWorkbook)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(xlsx, []byte("PK")))
}

func TestRenderDocumentWithInvalidInput(t *testing.T) {
	a := newTestApp(t, "")
	a.entries["total_days"].SetText("")

	_, err := a.renderDocument(export.RenderReport)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_days")
}

func TestApplyPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	a := newTestApp(t, path)
	a.entries["quantity"].SetText("2")

	cfg := a.config
	cfg.Currency = "$"
	cfg.BusinessName = "Taller Ruiz"
	cfg.Theme = "light"
	cfg.DefaultInput = a.input
	require.NoError(t, a.applyPreferences(cfg))

	assert.Equal(t, "$ 0.00", a.figureLabels["total_investment"].Text)

	saved, err := project.LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Taller Ruiz", saved.BusinessName)
	assert.Equal(t, "light", saved.Theme)
	assert.Equal(t, 2, saved.DefaultInput.Quantity)
}

func TestThemeVariants(t *testing.T) {
	dark := NewFurniProfitTheme("dark")
	assert.Equal(t, darkBackground, dark.Color(theme.ColorNameBackground, theme.VariantLight))

	light := NewFurniProfitTheme("light")
	assert.NotEqual(t, darkBackground, light.Color(theme.ColorNameBackground, theme.VariantDark))

	system := NewFurniProfitTheme("system")
	assert.Equal(t, darkBackground, system.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.NotEqual(t, darkBackground, system.Color(theme.ColorNameBackground, theme.VariantLight))

	unknown := NewFurniProfitTheme("purple")
	assert.Equal(t, darkBackground, unknown.Color(theme.ColorNameBackground, theme.VariantLight))
}
