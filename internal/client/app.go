// Package client assembles the configured services and the terminal UI into
// a runnable application.
package client

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/tui"
)

type App struct {
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	a.logger.Info().Msg("starting main loop")
	return a.tui.MainLoop(ctx)
}
