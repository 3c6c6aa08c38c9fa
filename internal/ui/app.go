// Package ui provides the FurniProfit desktop window.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/piwi3910/FurniProfit/internal/engine"
	"github.com/piwi3910/FurniProfit/internal/export"
	"github.com/piwi3910/FurniProfit/internal/format"
	"github.com/piwi3910/FurniProfit/internal/model"
)

// inputField is one text entry of the calculator form.
type inputField struct {
	key   string
	label string
}

var (
	productionFields = []inputField{
		{"quantity", "Units produced"},
		{"total_days", "Total working days"},
	}
	costFields = []inputField{
		{"material_cost_a", "Board / melamine"},
		{"material_cost_b", "Hardware / accessories"},
		{"daily_wage", "Daily wage"},
		{"transport", "Transport"},
		{"installation", "Installation"},
		{"other_costs", "Other costs"},
	}
)

// App holds all application state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	config     model.AppConfig
	configPath string
	log        zerolog.Logger

	history *History
	input   model.Input   // last valid input
	result  *model.Result // nil while the form is invalid

	// restoring suppresses recalculation while entries are filled programmatically
	restoring bool

	// UI references for dynamic updates
	entries      map[string]*widget.Entry
	modeRadio    *widget.RadioGroup
	paramLabel   *widget.Label
	paramEntry   *widget.Entry
	errorLabel   *widget.Label
	costLabels   map[string]*widget.Label
	figureLabels map[string]*widget.Label
	whatIf       *fyne.Container

	mainMenu *fyne.MainMenu
	undoItem *fyne.MenuItem
	redoItem *fyne.MenuItem
}

// NewApp creates the application state. configPath is where preference
// changes are saved; an empty path keeps them in memory only.
func NewApp(application fyne.App, window fyne.Window, cfg model.AppConfig, configPath string, logger zerolog.Logger) *App {
	cfg.Normalize()
	return &App{
		app:        application,
		window:     window,
		config:     cfg,
		configPath: configPath,
		log:        logger,
		history:    NewHistory(),
		input:      cfg.DefaultInput,
	}
}

// SetupMenus creates the native menu bar and keyboard shortcuts.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export PDF Report...", a.exportPDF),
		fyne.NewMenuItem("Export Spreadsheet...", a.exportXLSX),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences...", a.showPreferencesDialog),
		fyne.NewMenuItem("Export Preferences...", a.exportPreferences),
		fyne.NewMenuItem("Import Preferences...", a.importPreferences),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	a.undoItem = fyne.NewMenuItem("Undo", a.undo)
	a.redoItem = fyne.NewMenuItem("Redo", a.redo)
	editMenu := fyne.NewMenu("Edit",
		a.undoItem,
		a.redoItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset to Defaults", a.resetInput),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.mainMenu = fyne.NewMainMenu(fileMenu, editMenu, helpMenu)
	a.window.SetMainMenu(a.mainMenu)
	a.refreshHistoryMenu()

	canvas := a.window.Canvas()
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) { a.undo() })
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) { a.redo() })
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About FurniProfit",
		"FurniProfit: furniture production profitability\n\n"+
			"Works out costs, sale prices and profit for a batch\n"+
			"of furniture and exports a one-page report.",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.entries = make(map[string]*widget.Entry)

	production := widget.NewCard("Production", "", a.buildFieldGrid(productionFields))
	costs := widget.NewCard("Costs", "", a.buildFieldGrid(costFields))
	pricing := widget.NewCard("Pricing", "", a.buildPricingPanel())

	a.errorLabel = widget.NewLabel("")
	a.errorLabel.Importance = widget.DangerImportance
	a.errorLabel.Wrapping = fyne.TextWrapWord
	a.errorLabel.Hide()

	toolbar := container.NewHBox(
		widget.NewLabelWithStyle(a.config.BusinessName, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", a.undo),
		newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", a.redo),
		newIconButtonWithTooltip(theme.DocumentIcon(), "Export PDF report", a.exportPDF),
		newIconButtonWithTooltip(theme.GridIcon(), "Export spreadsheet", a.exportXLSX),
		newIconButtonWithTooltip(theme.SettingsIcon(), "Preferences", a.showPreferencesDialog),
	)

	left := container.NewVScroll(container.NewVBox(production, costs, pricing, a.errorLabel))
	right := container.NewVScroll(a.buildResultsPanel())

	split := container.NewHSplit(left, right)
	split.Offset = 0.45

	a.fillEntries(a.input)
	a.recalculate()

	return container.NewBorder(toolbar, nil, nil, nil, split)
}

// ─── Form ──────────────────────────────────────────────────

func (a *App) buildFieldGrid(fields []inputField) fyne.CanvasObject {
	grid := container.NewGridWithColumns(2)
	for _, f := range fields {
		e := widget.NewEntry()
		e.OnChanged = func(string) { a.recalculate() }
		a.entries[f.key] = e
		grid.Add(widget.NewLabel(f.label))
		grid.Add(e)
	}
	return grid
}

func (a *App) buildPricingPanel() fyne.CanvasObject {
	labels := make([]string, 0, len(model.PricingModes))
	for _, m := range model.PricingModes {
		labels = append(labels, m.Label())
	}
	a.modeRadio = widget.NewRadioGroup(labels, func(string) { a.recalculate() })
	a.modeRadio.Required = true

	a.paramLabel = widget.NewLabel("")
	a.paramEntry = widget.NewEntry()
	a.paramEntry.OnChanged = func(string) { a.recalculate() }

	return container.NewVBox(
		a.modeRadio,
		container.NewGridWithColumns(2, a.paramLabel, a.paramEntry),
	)
}

// fillEntries writes in into the form without triggering intermediate
// recalculations.
func (a *App) fillEntries(in model.Input) {
	a.restoring = true
	defer func() { a.restoring = false }()

	a.entries["quantity"].SetText(fmt.Sprintf("%d", in.Quantity))
	a.entries["total_days"].SetText(fmt.Sprintf("%d", in.TotalDays))
	a.entries["material_cost_a"].SetText(in.MaterialCostA.String())
	a.entries["material_cost_b"].SetText(in.MaterialCostB.String())
	a.entries["daily_wage"].SetText(in.DailyWage.String())
	a.entries["transport"].SetText(in.Transport.String())
	a.entries["installation"].SetText(in.Installation.String())
	a.entries["other_costs"].SetText(in.OtherCosts.String())
	a.modeRadio.SetSelected(in.PricingMode.Label())
	a.paramEntry.SetText(in.PricingParam.String())
}

// readInput parses the form into an Input. The first invalid field wins.
func (a *App) readInput() (model.Input, error) {
	var in model.Input
	var err error

	if in.Quantity, err = model.ParseCount("quantity", a.entries["quantity"].Text); err != nil {
		return in, err
	}
	if in.TotalDays, err = model.ParseCount("total_days", a.entries["total_days"].Text); err != nil {
		return in, err
	}

	amounts := []struct {
		key string
		dst *decimal.Decimal
	}{
		{"material_cost_a", &in.MaterialCostA},
		{"material_cost_b", &in.MaterialCostB},
		{"daily_wage", &in.DailyWage},
		{"transport", &in.Transport},
		{"installation", &in.Installation},
		{"other_costs", &in.OtherCosts},
	}
	for _, am := range amounts {
		if *am.dst, err = model.ParseAmount(am.key, a.entries[am.key].Text); err != nil {
			return in, err
		}
	}

	if in.PricingMode, err = model.ParsePricingMode(a.modeRadio.Selected); err != nil {
		return in, err
	}
	if in.PricingMode.UsesParam() {
		if in.PricingParam, err = model.ParseAmount("pricing_param", a.paramEntry.Text); err != nil {
			return in, err
		}
	}
	return in, in.Validate()
}

// recalculate derives a fresh result from the form. A valid input that
// differs from the previous one is recorded in the undo history.
func (a *App) recalculate() {
	if a.restoring || a.modeRadio == nil {
		return
	}
	a.refreshParamRow()

	in, err := a.readInput()
	if err != nil {
		a.showInputError(err)
		return
	}
	comparisons, err := engine.CompareScenarios(in, engine.BuildDefaultScenarios(in))
	if err != nil {
		a.showInputError(err)
		return
	}

	if !in.Equal(a.input) {
		a.history.Push(MakeSnapshot(a.input, describeChange(a.input, in)))
		a.input = in
		a.refreshHistoryMenu()
	}

	a.errorLabel.Hide()
	a.result = &comparisons[0].Result
	a.refreshResults(comparisons)
}

func (a *App) refreshParamRow() {
	mode, err := model.ParsePricingMode(a.modeRadio.Selected)
	if err != nil || !mode.UsesParam() {
		a.paramLabel.SetText("No parameter needed")
		a.paramEntry.Disable()
		return
	}
	a.paramLabel.SetText(mode.ParamLabel())
	a.paramEntry.Enable()
}

func (a *App) showInputError(err error) {
	a.result = nil
	a.errorLabel.SetText(err.Error())
	a.errorLabel.Show()
	a.clearResults()
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.costLabels = make(map[string]*widget.Label)
	a.figureLabels = make(map[string]*widget.Label)

	var empty model.Result
	costGrid := container.NewGridWithColumns(2)
	for _, f := range empty.CostFigures() {
		l := widget.NewLabelWithStyle("-", fyne.TextAlignTrailing, fyne.TextStyle{})
		a.costLabels[f.Key] = l
		costGrid.Add(widget.NewLabel(f.Label))
		costGrid.Add(l)
	}

	figureGrid := container.NewGridWithColumns(2)
	for _, f := range empty.Figures() {
		l := widget.NewLabelWithStyle("-", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
		a.figureLabels[f.Key] = l
		figureGrid.Add(widget.NewLabel(f.Label))
		figureGrid.Add(l)
	}

	a.whatIf = container.NewVBox()

	return container.NewVBox(
		widget.NewCard("Cost Breakdown", "", costGrid),
		widget.NewCard("Results", "", figureGrid),
		widget.NewCard("What If", "Same costs, different pricing", a.whatIf),
	)
}

func (a *App) refreshResults(comparisons []engine.Comparison) {
	money := format.NewMoney(a.config.Currency)
	current := comparisons[0].Result

	for _, f := range current.CostFigures() {
		a.costLabels[f.Key].SetText(money.Format(f.Value))
	}
	for _, f := range current.Figures() {
		l := a.figureLabels[f.Key]
		if f.Value.IsNegative() {
			l.Importance = widget.DangerImportance
		} else {
			l.Importance = widget.MediumImportance
		}
		l.SetText(money.Format(f.Value))
	}

	a.whatIf.RemoveAll()
	bold := fyne.TextStyle{Bold: true}
	a.whatIf.Add(container.NewGridWithColumns(4,
		widget.NewLabelWithStyle("Scenario", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Price", fyne.TextAlignTrailing, bold),
		widget.NewLabelWithStyle("Profit / unit", fyne.TextAlignTrailing, bold),
		widget.NewLabelWithStyle("Daily profit", fyne.TextAlignTrailing, bold),
	))
	a.whatIf.Add(widget.NewSeparator())
	for _, c := range comparisons {
		profit := widget.NewLabelWithStyle(money.Format(c.Result.ProfitPerUnit), fyne.TextAlignTrailing, fyne.TextStyle{})
		if c.Result.IsLoss() {
			profit.Importance = widget.DangerImportance
		}
		a.whatIf.Add(container.NewGridWithColumns(4,
			widget.NewLabel(c.Scenario.Name),
			widget.NewLabelWithStyle(money.Format(c.Result.UsedPrice), fyne.TextAlignTrailing, fyne.TextStyle{}),
			profit,
			widget.NewLabelWithStyle(money.Format(c.Result.DailyProfit), fyne.TextAlignTrailing, fyne.TextStyle{}),
		))
	}
	a.whatIf.Refresh()
}

func (a *App) clearResults() {
	for _, l := range a.costLabels {
		l.SetText("-")
	}
	for _, l := range a.figureLabels {
		l.Importance = widget.MediumImportance
		l.SetText("-")
	}
	a.whatIf.RemoveAll()
	a.whatIf.Add(widget.NewLabel("Fix the input to see alternatives."))
	a.whatIf.Refresh()
}

// ─── History ───────────────────────────────────────────────

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.input, "current"))
	if !ok {
		return
	}
	a.restore(snap.Input)
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.input, "current"))
	if !ok {
		return
	}
	a.restore(snap.Input)
}

// resetInput puts the configured starting values back, as an undoable change.
func (a *App) resetInput() {
	a.fillEntries(a.config.DefaultInput)
	a.recalculate()
}

func (a *App) restore(in model.Input) {
	a.input = in
	a.fillEntries(in)
	a.recalculate()
	a.refreshHistoryMenu()
}

func (a *App) refreshHistoryMenu() {
	if a.undoItem == nil {
		return
	}
	a.undoItem.Disabled = !a.history.CanUndo()
	a.redoItem.Disabled = !a.history.CanRedo()
	a.mainMenu.Refresh()
}

// ─── Actions ───────────────────────────────────────────────

type renderFunc func(model.Result, export.ReportOptions) ([]byte, error)

func (a *App) exportPDF() {
	a.exportDocument("PDF report", export.RenderReport, export.ReportFilename)
}

func (a *App) exportXLSX() {
	a.exportDocument("Spreadsheet", export.RenderWorkbook, export.WorkbookFilename)
}

// renderDocument renders the current result with the configured branding.
func (a *App) renderDocument(render renderFunc) ([]byte, error) {
	if a.result == nil {
		if _, err := a.readInput(); err != nil {
			return nil, fmt.Errorf("nothing to export: %w", err)
		}
		return nil, errors.New("nothing to export")
	}
	return render(*a.result, export.OptionsFromConfig(a.config))
}

func (a *App) exportDocument(kind string, render renderFunc, filename string) {
	data, err := a.renderDocument(render)
	if err != nil {
		a.log.Error().Err(err).Str("file", filename).Msg("export failed")
		if errors.Is(err, export.ErrExport) {
			err = fmt.Errorf("could not generate the %s", strings.ToLower(kind))
		}
		dialog.ShowError(err, a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if _, err := writer.Write(data); err != nil {
			a.log.Error().Err(err).Str("path", writer.URI().Path()).Msg("failed to write export")
			dialog.ShowError(err, a.window)
			return
		}
		a.log.Info().Str("path", writer.URI().Path()).Int("bytes", len(data)).Msg("document exported")
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("%s saved to %s", kind, writer.URI().Path()), a.window)
	}, a.window)
	d.SetFileName(filename)
	d.Show()
}
