package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	log "github.com/sirupsen/logrus"

	"github.com/amaumene/trackarr/internal/config"
	"github.com/amaumene/trackarr/internal/handler"
	"github.com/amaumene/trackarr/internal/service"
	"github.com/amaumene/trackarr/internal/settings"
)

const (
	shutdownTimeout = 30 * time.Second
	viewsDir        = "./views"
	viewsExt        = ".html"
)

type App struct {
	cfg    *config.Config
	svc    *service.Config
	server *fiber.App
}

func New() (*App, error) {
	cfg := config.Load()

	registry := settings.NewRegistry(cfg.EnforceWindowsNames)

	svc, err := service.Instantiate(cfg.InstanceName, registry)
	if err != nil {
		return nil, fmt.Errorf("instantiating settings service: %w", err)
	}

	app := &App{cfg: cfg, svc: svc}
	app.setupServer()
	return app, nil
}

func (a *App) setupServer() {
	engine := html.New(viewsDir, viewsExt)
	a.server = fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
	})

	handler.NewHTTPHandler(a.svc).RegisterRoutes(a.server)
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.startServer()

	return a.waitForShutdown(ctx, cancel)
}

func (a *App) startServer() {
	log.WithFields(log.Fields{
		"component": "server",
		"address":   a.cfg.ServerPort,
		"instance":  a.cfg.InstanceName,
	}).Info("http server listening")

	if err := a.server.Listen(a.cfg.ServerPort); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Fatal("http server failed to start")
	}
}

func (a *App) waitForShutdown(ctx context.Context, cancel context.CancelFunc) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		log.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		log.WithField("signal", sig).Info("received shutdown signal")
	}

	cancel()
	return a.shutdown()
}

func (a *App) shutdown() error {
	log.Info("graceful shutdown started")

	if err := a.server.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
	}

	if err := a.svc.Close(); err != nil {
		log.WithFields(log.Fields{
			"component": "database",
			"error":     err,
		}).Error("settings store close failed")
		return err
	}

	log.Info("graceful shutdown completed")
	return nil
}
