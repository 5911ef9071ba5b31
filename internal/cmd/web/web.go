// Package web wires configuration and lifecycle for the web command.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/textdata/web/internal/platform/config"
	"github.com/textdata/web/internal/platform/otel"
	"github.com/textdata/web/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"TEXTDATA_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
}

// ParseConfig resolves configuration from the environment, then lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server and blocks until ctx is done or serving fails.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := web.NewServer(ctx, web.Config{HTTPAddr: cfg.HTTPAddr})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
