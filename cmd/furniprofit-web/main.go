// FurniProfit web form
//
// Serves the profitability calculator as a single HTML page with PDF and
// XLSX downloads. Settings come from the environment or a .env file:
//
//   PORT                listen port (default 8080)
//   LOG_LEVEL           zerolog level (default info)
//   FURNIPROFIT_CONFIG  preferences file shared with the desktop app

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/piwi3910/FurniProfit/internal/config"
	"github.com/piwi3910/FurniProfit/internal/project"
	"github.com/piwi3910/FurniProfit/internal/web"
)

func main() {
	cfg := config.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(cfg.LogLevel)
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	prefs, err := project.LoadAppConfig(cfg.AppConfigPath)
	if err != nil {
		zlog.Fatal().Err(err).Str("path", cfg.AppConfigPath).Msg("failed to load preferences")
	}

	srv, err := web.NewServer(prefs, zlog.Logger)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to create server")
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info().Str("addr", server.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlog.Error().Err(err).Msg("shutdown failed")
	}
	zlog.Info().Msg("server stopped")
}
