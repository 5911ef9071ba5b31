// Package releaselog serves the public release log page.
package releaselog

import (
	"net/http"

	"github.com/textdata/web/internal/web/module"
	"github.com/textdata/web/internal/web/routepath"
)

// Module provides the release log route.
type Module struct{}

// New returns a release log module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "releaselog" }

// Mount wires release log route handlers.
func (Module) Mount(module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{})
	return module.Mount{Prefix: routepath.ReleaseLog, Handler: mux}, nil
}
