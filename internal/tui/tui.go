package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
)

type TUI struct {
	services *service.Services
	currency string
}

func New(services *service.Services, currency string, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, currency: currency}, nil
}

// MainLoop runs the quote list and editor until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services, t.currency)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
