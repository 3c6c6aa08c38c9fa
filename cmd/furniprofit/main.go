// FurniProfit: furniture production profitability calculator
//
// Desktop application that derives costs, sale prices and profit for a
// batch of furniture and exports a one-page PDF report.
//
// Build:
//   go build -o furniprofit ./cmd/furniprofit
//
// Using fyne-cross for packaged builds:
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/piwi3910/FurniProfit/internal/config"
	"github.com/piwi3910/FurniProfit/internal/model"
	"github.com/piwi3910/FurniProfit/internal/project"
	"github.com/piwi3910/FurniProfit/internal/ui"
)

func main() {
	cfg := config.Load()

	zerolog.SetGlobalLevel(cfg.LogLevel)
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	prefs, err := project.LoadAppConfig(cfg.AppConfigPath)
	if err != nil {
		// A broken preferences file should not keep the calculator from starting
		zlog.Warn().Err(err).Str("path", cfg.AppConfigPath).Msg("using default preferences")
		prefs = model.DefaultAppConfig()
	}

	application := app.NewWithID("com.piwi3910.furniprofit")
	window := application.NewWindow("FurniProfit")

	appUI := ui.NewApp(application, window, prefs, cfg.AppConfigPath, zlog.Logger)
	appUI.ApplyTheme()
	appUI.SetupMenus()
	window.SetContent(ui.WithToolTips(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1100, 720))
	window.CenterOnScreen()

	zlog.Info().Str("config", cfg.AppConfigPath).Msg("starting FurniProfit")
	window.ShowAndRun()
}
