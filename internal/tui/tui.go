// Package tui is the terminal front-end of the sign desk.
//
// It turns key presses into session messages and renders the session state.
// All decisions live in the session package.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sign-desk/internal/logger"
	"github.com/MKhiriev/go-sign-desk/internal/session"
	"github.com/MKhiriev/go-sign-desk/models"
)

type TUI struct {
	dispatcher *session.Dispatcher
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(dispatcher *session.Dispatcher, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{dispatcher: dispatcher, buildInfo: buildInfo, logger: log}
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := NewModel(t.dispatcher, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	if result, ok := finalModel.(*Model); ok {
		t.logger.Info().
			Str("func", "*TUI.Run").
			Bool("authenticated", result.State().Authenticated).
			Str("link", result.State().Link.String()).
			Msg("terminal ui closed")
	}
	return nil
}
