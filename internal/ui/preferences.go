package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FurniProfit/internal/model"
	"github.com/piwi3910/FurniProfit/internal/project"
)

var themeChoices = []string{"dark", "light", "system"}

// showPreferencesDialog edits branding, theme and the starting values.
func (a *App) showPreferencesDialog() {
	cfg := a.config

	textEntry := func(val *string) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(*val)
		e.OnChanged = func(text string) { *val = text }
		return e
	}

	themeSelect := widget.NewSelect(themeChoices, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	keepCurrent := widget.NewCheck("", nil)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Business Name", textEntry(&cfg.BusinessName)),
		widget.NewFormItem("Currency Symbol", textEntry(&cfg.Currency)),
		widget.NewFormItem("Report Title", textEntry(&cfg.ReportTitle)),
		widget.NewFormItem("Report Footer", textEntry(&cfg.ReportFooter)),
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Start With Current Values", keepCurrent),
	}

	d := dialog.NewForm("Preferences", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			if keepCurrent.Checked {
				cfg.DefaultInput = a.input
			}
			if err := a.applyPreferences(cfg); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save preferences: %w", err), a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(460, 420))
	d.Show()
}

// applyPreferences normalizes cfg, saves it and updates the running window.
// The in-memory config is replaced even when saving fails.
func (a *App) applyPreferences(cfg model.AppConfig) error {
	cfg.Normalize()
	a.config = cfg
	a.ApplyTheme()
	// Redraw so a new currency symbol shows up
	a.recalculate()

	if a.configPath == "" {
		return nil
	}
	if err := project.SaveAppConfig(a.configPath, cfg); err != nil {
		a.log.Error().Err(err).Str("path", a.configPath).Msg("failed to save preferences")
		return err
	}
	a.log.Info().Str("path", a.configPath).Msg("preferences saved")
	return nil
}

// ApplyTheme installs the configured theme on the application.
func (a *App) ApplyTheme() {
	a.app.Settings().SetTheme(NewFurniProfitTheme(a.config.Theme))
}

// exportPreferences saves the current preferences to a backup file.
func (a *App) exportPreferences() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := project.ExportPreferences(writer, a.config, time.Now()); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Preferences exported to:\n%s", writer.URI().Path()), a.window)
	}, a.window)
	d.SetFileName("furniprofit-preferences.json")
	d.Show()
}

// importPreferences replaces the preferences with a backup after confirmation.
func (a *App) importPreferences() {
	dialog.ShowConfirm("Import Preferences",
		"Importing will replace your branding, theme and starting values.\n\nContinue?",
		func(ok bool) {
			if !ok {
				return
			}
			d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
				if err != nil || reader == nil {
					return
				}
				defer reader.Close()
				backup, err := project.ImportPreferences(reader)
				if err != nil {
					dialog.ShowError(err, a.window)
					return
				}
				if err := a.applyPreferences(backup.Config); err != nil {
					dialog.ShowError(fmt.Errorf("failed to save imported preferences: %w", err), a.window)
					return
				}
				dialog.ShowInformation("Import Complete",
					fmt.Sprintf("Preferences imported from a backup created %s.", backup.CreatedAt.Format(time.DateOnly)), a.window)
			}, a.window)
			d.Show()
		},
		a.window,
	)
}
