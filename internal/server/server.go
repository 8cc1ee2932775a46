// Package server builds the gin engine and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/habits/config"
	"github.com/ncobase/habits/internal/data"
	"github.com/ncobase/habits/internal/handler"
	"github.com/ncobase/habits/internal/service"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/logging/logger"
	"github.com/ncobase/habits/net/resp"
	"github.com/ncobase/habits/version"
)

// Server represents the application server.
type Server struct {
	config *config.Config
	logger *logger.Logger
	engine *gin.Engine
	server *http.Server
}

// New wires storage, services and handlers into a ready engine.
func New(cfg *config.Config, log *logger.Logger) *Server {
	switch cfg.RunMode {
	case gin.DebugMode, gin.TestMode, gin.ReleaseMode:
		gin.SetMode(cfg.RunMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	svc := service.NewService(data.NewData(log), structs.NewSortRegistry(), cfg, log)
	h := handler.NewHandler(svc, cfg, log)

	s := &Server{config: cfg, logger: log}
	s.engine = s.setupRouter(h)
	return s
}

// Engine returns the gin engine.
func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) setupRouter(h *handler.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(Trace())
	r.Use(s.loggerMiddleware())
	r.Use(handler.Negotiate())

	r.GET("/health", func(c *gin.Context) {
		resp.Success(c.Writer, map[string]string{"status": "healthy"})
	})
	r.GET("/version", func(c *gin.Context) {
		resp.Success(c.Writer, version.GetVersionInfo())
	})

	h.RegisterRoutes(r)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof(ctx, "starting server on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Info(context.Background(), "server exited")
	return nil
}
