// internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"careers-backend/internal/common/config"
	"careers-backend/internal/common/logger"
)

// Server wraps the HTTP listener with timeouts and graceful shutdown.
type Server struct {
	http   *http.Server
	logger logger.Logger
}

func New(cfg *config.Config, handler http.Handler, log logger.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
		},
		logger: log,
	}
}

// Start blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", map[string]interface{}{"addr": s.http.Addr})
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests before returning.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server", nil)
	return s.http.Shutdown(ctx)
}
