// Package home serves the landing page and the root catch-all.
package home

import (
	"net/http"

	"github.com/textdata/web/internal/web/module"
	"github.com/textdata/web/internal/web/routepath"
)

// Module provides the landing page routes.
type Module struct{}

// New returns a home module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires landing page route handlers. The module owns the root
// prefix, so unmatched paths fall through to its not-found handler.
func (Module) Mount(module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{})
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
