package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sign-desk/internal/config"
	"github.com/MKhiriev/go-sign-desk/internal/logger"
	"github.com/MKhiriev/go-sign-desk/internal/service"
	"github.com/MKhiriev/go-sign-desk/internal/session"
	"github.com/MKhiriev/go-sign-desk/internal/store"
	"github.com/MKhiriev/go-sign-desk/internal/tui"
	"github.com/MKhiriev/go-sign-desk/models"
)

// UI is the front-end the App hands control to.
type UI interface {
	Run(ctx context.Context) error
}

// App owns the datastore connector for the lifetime of the process and runs
// the terminal UI on top of one session.
type App struct {
	connector store.Connector
	ui        UI
	logger    *logger.Logger
}

// NewApp wires connector, credential services, dispatcher and UI.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) *App {
	connector := store.NewConnector(cfg.Storage.DB, log)
	services := service.NewClientServices(cfg.App)
	dispatcher := session.NewDispatcher(ctx, connector, services.CredentialService, *cfg, log)

	return &App{
		connector: connector,
		ui:        tui.New(dispatcher, buildInfo, log),
		logger:    log,
	}
}

// Run blocks until the UI exits, then closes the datastore pool.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.connector.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "*App.Run").Msg("error closing datastore connection")
			if err == nil {
				err = fmt.Errorf("close datastore: %w", closeErr)
			}
		}
	}()

	a.logger.Info().Str("func", "*App.Run").Msg("client started")

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("client ui: %w", err)
	}
	return nil
}
