package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"finboard/internal/backend"
	"finboard/internal/cli"
	"finboard/internal/fixture"
	applog "finboard/internal/log"
	"finboard/internal/services"
	"finboard/internal/session"
	"finboard/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger, closeLogs := cli.SetupLogger(cfg)
	defer closeLogs()

	ctx := context.Background()

	txs, users, err := fixture.Load()
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}

	factory := backend.NewFactory(logger.WithComponent(applog.ComponentStore).Logger)
	result, err := factory.Create(ctx, backend.Type(cfg.DataBackend), txs)
	if err != nil {
		return fmt.Errorf("create backend: %w", err)
	}
	if result.Cleanup != nil {
		defer func() { _ = result.Cleanup() }()
	}

	sess := session.NewManager(users, logger.WithComponent(applog.ComponentSession).Logger)
	svc := services.NewTransactionService(result.Store, logger.WithComponent(applog.ComponentService).Logger)

	logger.Info("starting",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldBackend, cfg.DataBackend,
		applog.FieldPageSize, cfg.PageSize)

	app := ui.NewApp(cfg, logger, sess, svc)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	logger.Info("shutdown", applog.FieldOperation, applog.OpShutdown)
	return nil
}
