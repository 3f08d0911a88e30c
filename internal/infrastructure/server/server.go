// Package server exposes the command interface over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/app/command"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/config"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/monitoring"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	maxBodyBytes      = 8 << 20
)

// Dispatcher runs commands.
type Dispatcher interface {
	Handle(ctx context.Context, payload []byte) command.Response
	Dispatch(ctx context.Context, req command.Request) command.Response
}

// Server wraps the router and its dependencies.
type Server struct {
	router   *gin.Engine
	cfg      config.ServerConfig
	commands Dispatcher
	metrics  *monitoring.Metrics
}

// New builds the router. ctx supplies the base logger for request logs.
func New(ctx context.Context, cfg config.ServerConfig, commands Dispatcher, metrics *monitoring.Metrics) *Server {
	if metrics == nil {
		metrics = monitoring.NewMetrics()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestContext(*logging.FromContext(ctx)))
	router.Use(AccessLog())
	router.Use(monitoring.Middleware(metrics))
	router.Use(CORS(cfg.AllowedOrigins))

	s := &Server{router: router, cfg: cfg, commands: commands, metrics: metrics}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := s.router.Group("/api/v1")
	api.POST("/commands", s.handleCommand)

	api.GET("/sessions", s.listSessions)
	api.POST("/sessions", s.captureSession)
	api.GET("/sessions/:id", s.getSession)
	api.DELETE("/sessions/:id", s.deleteSession)
	api.POST("/sessions/:id/restore", s.restoreSession)

	api.GET("/templates", s.listTemplates)
	api.POST("/templates", s.createTemplate)
	api.DELETE("/templates/:id", s.deleteTemplate)
	api.POST("/templates/:id/restore", s.restoreTemplate)
	api.GET("/templates/:id/export", s.exportTemplate)
}

// Handler returns the router as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Listen, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logging.FromContext(ctx)
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("http server listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	log.Info().Msg("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
