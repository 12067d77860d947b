package main

import (
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/mizutama/livability/internal/app"
	"github.com/mizutama/livability/internal/config"
	"github.com/mizutama/livability/pkg/logging"
	"github.com/mizutama/livability/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	srv, err := app.InitializeServer(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize server", "err", err)
		os.Exit(1)
	}

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("livability server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))

	if err := srv.Run(); err != nil {
		logger.Error("livability server exited with error", "err", err)
	} else {
		logger.Info("livability server stopped")
	}
}
