package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/mizutama/livability/internal/config"
	"github.com/mizutama/livability/pkg/logging"
)

// Server wraps the analysis API router with an HTTP listener
type Server struct {
	logger *logging.Logger

	srv     *http.Server
	started atomic.Bool
}

// NewServer constructs the livability HTTP server
func NewServer(log *logging.Logger, cfg config.Config, h *Handlers) *Server {
	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           NewRouter(h, cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: log,
		srv:    httpSrv,
	}
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("livability HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for livability HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("livability HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("livability HTTP server shutdown complete")
	return nil
}
