package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Wasim1024/spamDetectionApp/internal/config"
	"go.uber.org/zap"
)

// Server runs the HTTP API
type Server struct {
	cfg    config.ServerConfig
	server *http.Server
	logger *zap.Logger
	errCh  chan error
}

// NewServer creates a new HTTP server for handler
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:         cfg.ListenAddress,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
		errCh:  make(chan error, 1),
	}
}

// Start binds the listen address and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.ListenAddress, err)
	}

	s.logger.Info("Starting HTTP server", zap.String("address", ln.Addr().String()))

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed", zap.Error(err))
			s.errCh <- err
		}
		close(s.errCh)
	}()

	return nil
}

// Errors reports a fatal serve error; it is closed once the server stops
func (s *Server) Errors() <-chan error {
	return s.errCh
}

// Stop gracefully shuts the server down within the configured timeout
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Stopping HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}
