// Package web hosts the browser-facing service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/textdata/web/internal/platform/branding"
	"github.com/textdata/web/internal/platform/timeouts"
	"github.com/textdata/web/internal/web/app"
	"github.com/textdata/web/internal/web/module"
	"github.com/textdata/web/internal/web/modules/home"
	releaselogmod "github.com/textdata/web/internal/web/modules/releaselog"
	"github.com/textdata/web/internal/web/platform/httpx"
	"github.com/textdata/web/internal/web/platform/observability"
	"github.com/textdata/web/internal/web/routepath"
	"github.com/textdata/web/internal/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// defaultModules returns the page modules the service mounts.
func defaultModules() []module.Module {
	return []module.Module{
		home.New(),
		releaselogmod.New(),
	}
}

// NewHandler builds the root handler: page modules, static assets, and the
// health probe, wrapped in the shared middleware chain.
func NewHandler(cfg Config) (http.Handler, error) {
	deps := module.Dependencies{AppName: branding.AppName}
	h, err := app.Composer{}.Compose(app.ComposeInput{
		Dependencies: deps,
		Modules:      defaultModules(),
	})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	rootMux.Handle("/", h)

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Trace(),
		observability.RequestLogger(log.Default()),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
